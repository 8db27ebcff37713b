// Package parser implements the line and field stages of the tabular decoder.
//
// Both stages are total: every input string produces a result and no error.
// Malformed quoting degrades to a best-effort field value rather than failing.
package parser

import (
	"strings"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-tabular/internal/tokenizer"
)

// Parser splits one logical line into fields.
// It maintains a single token lookahead over the field tokenizer.
type Parser struct {
	tokenizer *shapetokenizer.Tokenizer
	current   *shapetokenizer.Token
	hasToken  bool
	inQuotes  bool
}

// NewParser creates a field parser for a single logical line.
func NewParser(line string) *Parser {
	tok := tokenizer.NewFieldTokenizer()
	tok.Initialize(line)

	p := &Parser{tokenizer: &tok}
	p.advance() // Load first token
	return p
}

// SplitFields splits line into trimmed field values.
func SplitFields(line string) []string {
	return NewParser(line).ParseFields()
}

// ParseFields consumes the line and returns its fields.
//
// Grammar (quote state is carried in the parser, not the grammar):
//
//	Line         = { Chunk } ;
//	Chunk        = EscapedQuote | Quote | Comma | Content ;
//	EscapedQuote = '""' ;
//
// Rules, in priority order:
//   - "" appends one literal quote, inside or outside a quoted region
//   - a lone " toggles the quoted region and is dropped
//   - , outside a quoted region ends the current field
//   - anything else is appended verbatim
//
// The result always has one more element than there are field-ending commas.
// An unterminated quoted region is flushed as-is.
func (p *Parser) ParseFields() []string {
	fields := make([]string, 0, 8)
	var cur strings.Builder

	for p.hasToken {
		token := p.peek()

		switch token.Kind() {
		case tokenizer.TokenDQuote:
			p.advance() // consume the quote

			// Check if next token is also a quote (escaped quote: "")
			if next := p.peek(); next != nil && next.Kind() == tokenizer.TokenDQuote {
				cur.WriteByte(tokenizer.Quote)
				p.advance() // consume second quote
			} else {
				p.inQuotes = !p.inQuotes
			}
		case tokenizer.TokenComma:
			p.advance()
			if p.inQuotes {
				cur.WriteByte(tokenizer.Delimiter)
				continue
			}
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteString(token.ValueString())
			p.advance()
		}
	}

	return append(fields, strings.TrimSpace(cur.String()))
}

// Helper methods

// peek returns current token without advancing.
func (p *Parser) peek() *shapetokenizer.Token {
	return p.current
}

// advance moves to next token.
func (p *Parser) advance() {
	token, ok := p.tokenizer.NextToken()
	if ok {
		p.current = token
		p.hasToken = true
	} else {
		p.hasToken = false
		p.current = nil
	}
}
