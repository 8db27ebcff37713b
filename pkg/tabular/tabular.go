// Package tabular decodes comma-delimited text into string-only records.
//
// The decoder is scoped, not a full RFC 4180 reader:
//   - records are single lines; \r\n and \n are equivalent line endings
//   - blank lines are skipped
//   - the delimiter is always a comma
//   - a quote toggles a quoted region in which commas are literal
//   - two adjacent quotes are one literal quote character
//   - every field and header is trimmed of surrounding whitespace
//
// Malformed input (unbalanced quotes, ragged rows, duplicate headers) never
// fails. The only error is ErrEmptyInput, returned when there is no header.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each call creates its own tokenizer and parser state; there is no package-level
// mutable state.
//
// # Example usage
//
//	table, err := tabular.Decode("name,age\nAlice,30\nBob,25")
//	if errors.Is(err, tabular.ErrEmptyInput) {
//	    // no data found
//	}
//	for _, rec := range table.Records {
//	    fmt.Println(rec["name"], rec["age"])
//	}
package tabular

import (
	"fmt"
	"io"

	"github.com/shapestone/shape-tabular/internal/parser"
)

// Decode decodes raw text into a Table.
//
// The first non-blank line defines the columns; every following line becomes
// one Record, in input order. Returns ErrEmptyInput when raw is empty or
// contains only whitespace and blank lines.
//
// Example:
//
//	table, _ := tabular.Decode("a,b,c\n1,2")
//	// table.Columns: [a b c]
//	// table.Records[0]: map[a:1 b:2 c:]
func Decode(raw string) (*Table, error) {
	lines := TokenizeLines(raw)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	columns := SplitFields(lines[0])
	return &Table{
		Columns: columns,
		Records: Assemble(columns, lines[1:]),
	}, nil
}

// DecodeBytes decodes raw bytes interpreted as UTF-8 text.
func DecodeBytes(data []byte) (*Table, error) {
	return Decode(string(data))
}

// DecodeReader reads r to EOF and decodes the result.
// A read failure is returned wrapped and is never reported as ErrEmptyInput.
func DecodeReader(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return DecodeBytes(data)
}

// TokenizeLines splits raw text into its non-empty logical lines.
func TokenizeLines(raw string) []string {
	return parser.SplitLines(raw)
}

// SplitFields splits one logical line into trimmed field values.
//
//	tabular.SplitFields(`a,"b,c",d`)        // [a b,c d]
//	tabular.SplitFields(`"He said ""hi"""`) // [He said "hi"]
func SplitFields(line string) []string {
	return parser.SplitFields(line)
}

// Format returns the format identifier for this decoder.
func Format() string {
	return "TABULAR"
}
