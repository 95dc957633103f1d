// Package lex is a generic maximal-munch tokenizer.
//
// A Lexer is described by two grammars: one recognizing tokens, one
// recognizing filler such as whitespace and comments. At every position the
// lexer takes the longest prefix either grammar matches; on a tie the token
// grammar wins. Tokens are returned with their source spans, filler is
// dropped, and the first position where neither grammar makes progress is
// reported as a *LexError.
//
// Grammars are pattern.Matcher values, so any engine with a longest-prefix
// operation can be plugged in (see package pattern).
//
// # Output strategies
//
// Lexer.Stream produces tokens lazily, one per pull. Tokens before a lexical
// error are all delivered before the error is observed, and a consumer that
// stops early never pays for scanning the rest of the input.
//
// Lexer.Tokenize runs the same stream to the end and returns either every
// token or the error, never both.
//
// # Example
//
//	number := pattern.Map(pattern.While(unicode.IsDigit), func(s string) int {
//	    n, _ := strconv.Atoi(s)
//	    return n
//	})
//	spaces := pattern.While(unicode.IsSpace)
//	lx := lex.Token(number).Append(lex.Whitespace[int](spaces))
//
//	toks, err := lx.Tokenize("input.txt", "12 34")
//	// toks: 12 at 1:1-1:3, 34 at 1:4-1:6
//
// # Thread Safety
//
// A Lexer is an immutable value and may be shared. Each Stream belongs to
// one goroutine.
package lex

import (
	"github.com/shapestone/shape-lex/internal/annotate"
	"github.com/shapestone/shape-lex/internal/driver"
	"github.com/shapestone/shape-lex/pkg/pattern"
	"github.com/shapestone/shape-lex/pkg/source"
)

// Lexer describes what counts as a token and what counts as filler.
//
// The zero Lexer recognizes nothing: empty input lexes to no tokens and any
// other input fails at its first character.
type Lexer[T any] struct {
	tokens pattern.Matcher[T]
	filler pattern.Matcher[struct{}]
	layout source.Layout
}

// New returns a lexer with the given token and filler grammars.
// Either may be nil.
func New[T any](tokens pattern.Matcher[T], filler pattern.Matcher[struct{}]) Lexer[T] {
	return Lexer[T]{tokens: tokens, filler: filler}
}

// Token returns a lexer that recognizes tokens with m and has no filler.
func Token[T any](m pattern.Matcher[T]) Lexer[T] {
	return Lexer[T]{tokens: m}
}

// Whitespace returns a lexer whose only grammar is filler matched by m.
// The payload of m is discarded.
func Whitespace[T, W any](m pattern.Matcher[W]) Lexer[T] {
	return Lexer[T]{filler: pattern.Discard(m)}
}

// Append merges lexers. Token grammars are combined as alternatives in order,
// receiver first, and so are filler grammars. Equal-length matches go to the
// earliest lexer. The receiver's layout is kept.
func (l Lexer[T]) Append(others ...Lexer[T]) Lexer[T] {
	tokens := []pattern.Matcher[T]{l.tokens}
	filler := []pattern.Matcher[struct{}]{l.filler}
	for _, o := range others {
		tokens = append(tokens, o.tokens)
		filler = append(filler, o.filler)
	}
	return Lexer[T]{
		tokens: alt(tokens),
		filler: alt(filler),
		layout: l.layout,
	}
}

// WithLayout returns a copy of l that computes positions with layout.
func (l Lexer[T]) WithLayout(layout source.Layout) Lexer[T] {
	l.layout = layout
	return l
}

// Layout returns the position-advance rule used by l.
func (l Lexer[T]) Layout() source.Layout {
	return l.layout
}

// Stream returns a lazy token stream over text. src names the source in
// positions and errors.
func (l Lexer[T]) Stream(src, text string) *Stream[T] {
	m := driver.Combine(l.tokens, l.filler)
	return &Stream[T]{d: driver.New(m, annotate.Annotate(src, text, l.layout))}
}

// Tokenize lexes all of text. It returns every token, or the first
// *LexError and no tokens.
func (l Lexer[T]) Tokenize(src, text string) ([]Located[T], error) {
	return Collect(l.Stream(src, text))
}

// alt combines the non-nil matchers in ms, or returns nil if there are none.
func alt[T any](ms []pattern.Matcher[T]) pattern.Matcher[T] {
	var nonNil []pattern.Matcher[T]
	for _, m := range ms {
		if m != nil {
			nonNil = append(nonNil, m)
		}
	}
	if len(nonNil) == 0 {
		return nil
	}
	return pattern.Alt(nonNil...)
}
