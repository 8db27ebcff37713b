package parser

import (
	"strings"

	"github.com/shapestone/shape-tabular/internal/tokenizer"
)

// SplitLines returns the non-empty logical lines of raw.
//
// The whole text is trimmed first, then split on \n with an optional
// preceding \r. Zero-length segments are dropped; a segment holding only
// whitespace is kept. Empty or blank input yields nil.
func SplitLines(raw string) []string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}

	tok := tokenizer.NewLineTokenizer()
	tok.Initialize(text)

	var lines []string
	for {
		token, ok := tok.NextToken()
		if !ok {
			break
		}
		if token.Kind() != tokenizer.TokenLine {
			continue
		}
		if line := strings.TrimSuffix(token.ValueString(), "\r"); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
