package tabular

import "errors"

var (
	// ErrEmptyInput indicates there is no non-blank line to use as a header.
	// Callers typically present it as "no data found".
	ErrEmptyInput = errors.New("tabular: no data found")

	// ErrUnsupportedNode indicates FromNode received an AST that is not an
	// array of rows of string literals.
	ErrUnsupportedNode = errors.New("tabular: unsupported AST node")
)
