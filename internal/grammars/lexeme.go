// Package grammars provides ready-made lexers and loads lexers from YAML
// grammar files.
//
// Every lexer in this package produces Lexeme tokens: a kind name plus the
// matched text.
package grammars

import (
	"strconv"

	"github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-lex/pkg/pattern"
)

// Lexeme is a token kind together with the text it was matched from.
type Lexeme struct {
	Kind string
	Text string
}

// String renders the lexeme as `Kind "text"`.
func (l Lexeme) String() string {
	return l.Kind + " " + strconv.Quote(l.Text)
}

// kinded wraps a string matcher so its payload becomes a Lexeme of kind.
func kinded(kind string, m pattern.Matcher[string]) pattern.Matcher[Lexeme] {
	return pattern.Map(m, func(text string) Lexeme {
		return Lexeme{Kind: kind, Text: text}
	})
}

// shaped adapts a shape-core matcher into a Lexeme matcher.
func shaped(m tokenizer.Matcher) pattern.Matcher[Lexeme] {
	return pattern.Map(pattern.Shape(m), func(tok *tokenizer.Token) Lexeme {
		return Lexeme{Kind: string(tok.Kind()), Text: tok.ValueString()}
	})
}
