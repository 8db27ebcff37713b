// Package loader reads input files and decodes them to text for the tabular decoder.
//
// Failures here belong to the loader: a missing path, an unreadable file or
// an unknown encoding are reported as *LoadError, never as the decoder's
// ErrEmptyInput.
package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used when Options.Encoding is empty.
const DefaultEncoding = "utf-8"

var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8,
	"utf8":         unicode.UTF8,
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

// Options configures Load.
type Options struct {
	// Encoding names the file's character encoding. Default: utf-8.
	Encoding string
	// MaxBytes limits the raw file size. 0 means no limit.
	MaxBytes int64
	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

// Encodings returns the supported encoding names, sorted.
func Encodings() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the encoding registered under name, ignoring case.
func Lookup(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultEncoding
	}
	enc, ok := encodings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// Load reads the file at path and returns its contents as UTF-8 text.
func Load(ctx context.Context, path string, opts Options) (string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = nopLogger
	}

	if path == "" {
		return "", &LoadError{Path: path, Err: ErrNoFile}
	}

	name := opts.Encoding
	if name == "" {
		name = DefaultEncoding
	}
	enc, err := Lookup(name)
	if err != nil {
		return "", &LoadError{Path: path, Err: err}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", &LoadError{Path: path, Err: fmt.Errorf("%w: %w", ErrRead, err)}
	}
	defer f.Close()

	text, err := Decode(f, enc, opts.MaxBytes)
	if err != nil {
		return "", &LoadError{Path: path, Err: err}
	}

	logger.DebugContext(ctx, "loaded input",
		"path", path,
		"encoding", name,
		"bytes", len(text))
	return text, nil
}

// Decode reads r to EOF and converts it from enc to UTF-8.
// When maxBytes > 0, input longer than maxBytes fails with ErrTooLarge.
func Decode(r io.Reader, enc encoding.Encoding, maxBytes int64) (string, error) {
	if maxBytes > 0 {
		r = io.LimitReader(r, maxBytes+1)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	if maxBytes > 0 && int64(len(raw)) > maxBytes {
		return "", fmt.Errorf("%w (%d bytes)", ErrTooLarge, maxBytes)
	}

	text, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("%w: decode text: %w", ErrRead, err)
	}
	return string(text), nil
}
