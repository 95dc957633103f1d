// Package driver implements the maximal-munch scanning loop.
package driver

import (
	"github.com/shapestone/shape-lex/pkg/pattern"
)

// Outcome is the result of one combined match: a token payload, or filler.
type Outcome[T any] struct {
	Token  T
	Filler bool
}

// Combine builds one matcher over both grammars.
//
// The longest prefix matched by either grammar wins. When a token and filler
// match prefixes of the same length, the token wins, because it is the first
// alternative.
func Combine[T any](tokens pattern.Matcher[T], filler pattern.Matcher[struct{}]) pattern.Matcher[Outcome[T]] {
	var alts []pattern.Matcher[Outcome[T]]
	if tokens != nil {
		alts = append(alts, pattern.Map(tokens, func(v T) Outcome[T] {
			return Outcome[T]{Token: v}
		}))
	}
	if filler != nil {
		alts = append(alts, pattern.Map(filler, func(struct{}) Outcome[T] {
			return Outcome[T]{Filler: true}
		}))
	}
	return pattern.Alt(alts...)
}
