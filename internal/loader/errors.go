package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFile indicates no input path was given.
	ErrNoFile = errors.New("no file provided")

	// ErrRead indicates the file could not be opened or read.
	ErrRead = errors.New("file reading failed")

	// ErrUnknownEncoding indicates an unsupported character encoding name.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrTooLarge indicates the file exceeds Options.MaxBytes.
	ErrTooLarge = errors.New("file exceeds maximum size")
)

// LoadError records the path that failed to load and why.
type LoadError struct {
	// Path is the file being loaded.
	Path string
	// Err is the underlying error; it matches one of the sentinels above.
	Err error
}

// Error returns the failure with its path.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}
