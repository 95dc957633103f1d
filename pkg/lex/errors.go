package lex

import (
	"errors"

	"github.com/shapestone/shape-lex/pkg/source"
)

// LexError reports the position where no token or filler could be matched,
// or where a grammar matched the empty string.
//
// Lexing stops at the first LexError; nothing is retried or skipped. Two
// errors are equal when their positions are equal: LexError values compare
// with ==, and errors.Is matches a *LexError at the same position.
type LexError struct {
	Pos source.Position
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return "lexical error at " + e.Pos.String()
}

// Is reports whether target is a *LexError at the same position.
func (e *LexError) Is(target error) bool {
	var t *LexError
	if !errors.As(target, &t) {
		return false
	}
	return e.Pos == t.Pos
}
