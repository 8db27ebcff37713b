package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Delimiter is the only field separator the decoder recognises.
const Delimiter = ','

// Quote opens and closes quoted regions.
const Quote = '"'

// NewLineTokenizer creates a tokenizer that splits text into Line and Newline tokens.
//
// A carriage return directly before \n stays inside the Line token; the
// line splitter strips it so that \r\n and \n are equivalent boundaries.
// A lone \r is ordinary content.
func NewLineTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenNewline, "\n"),
		LineContentMatcher(),
	)
}

// NewFieldTokenizer creates a tokenizer for a single logical line.
//
// Every character matches exactly one of the three matchers, so tokenizing
// never stops early:
//  1. Comma
//  2. Double quote (one token per character, so "" is two tokens)
//  3. Field content (everything else, including \r and whitespace)
func NewFieldTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenComma, string(Delimiter)),
		tokenizer.StringMatcherFunc(TokenDQuote, string(Quote)),
		FieldContentMatcher(),
	)
}

// LineContentMatcher matches a run of characters that are not \n.
func LineContentMatcher() tokenizer.Matcher {
	return runMatcher(TokenLine, func(b byte) bool { return b == '\n' }, func(r rune) bool { return r == '\n' })
}

// FieldContentMatcher matches a run of characters that are neither the
// delimiter nor a quote.
//
// Grammar:
//
//	Field = Character+ ;
//	Character = <any character except ',' and '"'> ;
//
// Performance: Uses ByteStream for fast ASCII scanning when available.
func FieldContentMatcher() tokenizer.Matcher {
	return runMatcher(TokenField,
		func(b byte) bool { return b == Delimiter || b == Quote },
		func(r rune) bool { return r == Delimiter || r == Quote },
	)
}

// runMatcher builds a matcher that consumes characters until stop reports true.
// All stop characters are ASCII, so the byte path never splits a multi-byte rune.
func runMatcher(kind string, stopByte func(byte) bool, stopRune func(rune) bool) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if byteStream, ok := stream.(tokenizer.ByteStream); ok {
			return runMatcherByte(byteStream, kind, stopByte)
		}
		return runMatcherRune(stream, kind, stopRune)
	}
}

func runMatcherByte(stream tokenizer.ByteStream, kind string, stop func(byte) bool) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok || stop(b) {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(kind, []rune(string(value)))
}

func runMatcherRune(stream tokenizer.Stream, kind string, stop func(rune) bool) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok || stop(r) {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(kind, value)
}
