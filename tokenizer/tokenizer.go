// Package tokenizer normalizes a raw problem statement into an
// analyzable token stream while preserving byte offsets into the
// original text, so every downstream span can be traced back to the
// caller's input verbatim.
package tokenizer

import (
	"strings"
	"unicode"
)

// Token is a single analyzable unit of the statement.
type Token struct {
	Text  string // original casing, as written by the caller
	Lower string // lowercased form used for matching
	Start int    // byte offset into the raw statement
	End   int    // byte offset one past the last byte
	Index int    // position in the token stream
}

// Normalized is the tokenizer output consumed by the signal extractor.
// Raw is the statement exactly as submitted; Lower is a lowercased
// shadow used for case-insensitive matching. Offsets always refer to
// Raw so spans display original casing.
type Normalized struct {
	Raw    string
	Lower  string
	Tokens []Token
}

// Normalize segments the statement into tokens. Tokens are maximal runs
// of letters, digits, and a few in-word characters; punctuation and
// whitespace separate tokens but are never part of one. The input is
// assumed non-empty; emptiness is rejected by the operator before this
// stage runs.
func Normalize(raw string) Normalized {
	n := Normalized{
		Raw:   raw,
		Lower: strings.ToLower(raw),
	}

	start := -1
	for i, r := range raw {
		if isTokenRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n.appendToken(raw, start, i)
			start = -1
		}
	}
	if start >= 0 {
		n.appendToken(raw, start, len(raw))
	}
	return n
}

// appendToken adds raw[start:end] as a token unless it carries no
// letters or digits (a stray hyphen or currency mark on its own).
func (n *Normalized) appendToken(raw string, start, end int) {
	text := raw[start:end]
	if !strings.ContainsFunc(text, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) {
		return
	}
	n.Tokens = append(n.Tokens, Token{
		Text:  text,
		Lower: strings.ToLower(text),
		Start: start,
		End:   end,
		Index: len(n.Tokens),
	})
}

// TokenAt returns the index of the token covering the given byte
// offset, or -1 if the offset falls between tokens.
func (n Normalized) TokenAt(offset int) int {
	for _, t := range n.Tokens {
		if offset >= t.Start && offset < t.End {
			return t.Index
		}
	}
	return -1
}

// TokenNear returns the index of the first token starting at or after
// the given byte offset, or the last token if none follows.
func (n Normalized) TokenNear(offset int) int {
	for _, t := range n.Tokens {
		if t.End > offset {
			return t.Index
		}
	}
	return len(n.Tokens) - 1
}

// isTokenRune reports whether a rune belongs inside a token. Currency
// markers and in-word hyphens stay attached so cues like "$500" and
// "production-ready" survive as single tokens.
func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '$' || r == '-' || r == '\''
}
