package lex

import (
	"fmt"

	"github.com/shapestone/shape-lex/pkg/source"
)

// Located is a token together with the span of source it was read from.
type Located[T any] struct {
	Value T
	Span  source.Span
}

// String renders the token as "span value".
func (l Located[T]) String() string {
	return fmt.Sprintf("%s %v", l.Span, l.Value)
}
