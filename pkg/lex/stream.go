package lex

import (
	"iter"

	"github.com/shapestone/shape-lex/internal/driver"
	"github.com/shapestone/shape-lex/pkg/source"
)

// Stream is a lazily produced sequence of tokens.
//
// Each call to Next scans just far enough to produce one token. When Next
// returns false, Err tells whether the input was exhausted (nil) or a
// lexical error stopped the scan.
type Stream[T any] struct {
	d   *driver.Driver[T]
	err error
}

// Next returns the next token. It returns false at the end of input or at a
// lexical error; check Err to tell them apart.
func (s *Stream[T]) Next() (Located[T], bool) {
	for {
		step := s.d.Step()
		switch step.Kind {
		case driver.Emit:
			return Located[T]{Value: step.Token, Span: step.Span}, true
		case driver.Skip:
			continue
		case driver.Fail:
			s.err = &LexError{Pos: step.Pos}
		}
		var zero Located[T]
		return zero, false
	}
}

// Err returns the *LexError that ended the stream, or nil if the stream has
// not failed.
func (s *Stream[T]) Err() error {
	return s.err
}

// Pos returns the position the next scan starts from. After a failure it is
// the error position.
func (s *Stream[T]) Pos() source.Position {
	return s.d.Pos()
}

// All yields the remaining tokens with a nil error. If the stream fails, a
// final pair with a zero token and the *LexError is yielded.
//
//	for tok, err := range lx.Stream("in", text).All() {
//	    if err != nil {
//	        return err
//	    }
//	    use(tok)
//	}
func (s *Stream[T]) All() iter.Seq2[Located[T], error] {
	return func(yield func(Located[T], error) bool) {
		for {
			tok, ok := s.Next()
			if !ok {
				break
			}
			if !yield(tok, nil) {
				return
			}
		}
		if s.err != nil {
			var zero Located[T]
			yield(zero, s.err)
		}
	}
}
