package calc

import (
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical token of an expression.
type Token struct {
	// Text is the source text of the token.
	Text string
	// Kind is the token's classification, assigned once by Tokenize.
	Kind TokenKind
	// Pos is the 1-based rune column of the token's first rune.
	Pos int
}

// String returns the source text of the token.
func (t Token) String() string {
	return t.Text
}

// GoString formats the token with its kind and position for debugging.
func (t Token) GoString() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the classification of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNum is a numeric literal. Its syntax is not checked until
	// evaluation.
	TokenNum
	// TokenIdent is a variable or function name.
	TokenIdent
	// TokenOp is one of the binary operators.
	TokenOp
	// TokenLParen is an open parenthesis.
	TokenLParen
	// TokenRParen is a close parenthesis.
	TokenRParen
	// TokenComma separates function arguments.
	TokenComma
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token

// Operators contains the runes which are binary operators.
const Operators = "+-*/"

// Tokenize splits a whitespace-free expression into tokens. Parentheses,
// commas, and operators are always single-rune tokens. Every other run of
// runes forms one token; a run beginning with a digit or a dot is a number,
// and any other run is an identifier.
func Tokenize(src string) []Token {
	var (
		toks  []Token
		run   strings.Builder
		start int
		col   int
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		s := run.String()
		kind := TokenIdent
		if c := s[0]; '0' <= c && c <= '9' || c == '.' {
			kind = TokenNum
		}
		toks = append(toks, Token{Text: s, Kind: kind, Pos: start})
		run.Reset()
	}
	for _, r := range src {
		col++
		var kind TokenKind
		switch {
		case r == '(':
			kind = TokenLParen
		case r == ')':
			kind = TokenRParen
		case r == ',':
			kind = TokenComma
		case strings.ContainsRune(Operators, r):
			kind = TokenOp
		default:
			if run.Len() == 0 {
				start = col
			}
			run.WriteRune(r)
			continue
		}
		flush()
		toks = append(toks, Token{Text: string(r), Kind: kind, Pos: col})
	}
	flush()
	return toks
}

// StripSpace removes all whitespace from s.
func StripSpace(s string) string {
	if strings.IndexFunc(s, unicode.IsSpace) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
