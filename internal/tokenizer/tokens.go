// Package tokenizer provides tabular text tokenization using Shape's tokenizer framework.
package tokenizer

// Token kinds emitted by the line tokenizer.
const (
	TokenLine    = "Line"    // run of characters up to, not including, \n
	TokenNewline = "Newline" // \n
)

// Token kinds emitted by the field tokenizer.
//
// The field tokenizer emits character-level tokens only. Whether a comma
// separates fields depends on quote state, which the parser tracks.
const (
	TokenComma  = "Comma"  // , (field separator outside quotes)
	TokenDQuote = "DQuote" // " (one token per quote character)
	TokenField  = "Field"  // run of characters that are neither comma nor quote
)
