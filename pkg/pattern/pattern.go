// Package pattern defines the longest-prefix matching capability the lexer
// is built on, together with adapters for real matching engines.
//
// A Matcher looks at the start of its input and reports the longest prefix
// it recognizes, with a payload describing what it recognized. Matchers are
// composed with Alt and Map; the engines in this package are:
//
//   - Regexp: github.com/dlclark/regexp2 (backtracking, .NET syntax)
//   - POSIX: the standard regexp package in leftmost-longest mode
//   - Shape: matcher functions from shape-core's tokenizer package
//   - Literal, While, Empty, Never, Func: small hand-written combinators
//
// # Thread Safety
//
// All matchers in this package hold no mutable state and are safe for
// concurrent use.
package pattern

// Matcher recognizes a prefix of its input.
//
// Match returns the payload and length (in runes) of the longest prefix of
// input it matches. ok is false when no prefix, not even an empty one,
// matches. A successful match of length 0 is allowed; callers decide what an
// empty match means. n must never exceed len(input).
type Matcher[T any] interface {
	Match(input []rune) (value T, n int, ok bool)
}

// Func adapts an ordinary function to the Matcher interface.
type Func[T any] func(input []rune) (T, int, bool)

// Match calls f(input).
func (f Func[T]) Match(input []rune) (T, int, bool) {
	return f(input)
}

// Alt matches the longest prefix any alternative matches.
//
// When several alternatives match prefixes of the same length, the one listed
// first wins. Nil alternatives are skipped, so Alt() and Alt(nil) match nothing.
func Alt[T any](alternatives ...Matcher[T]) Matcher[T] {
	var ms []Matcher[T]
	for _, m := range alternatives {
		if m != nil {
			ms = append(ms, m)
		}
	}
	if len(ms) == 1 {
		return ms[0]
	}
	return Func[T](func(input []rune) (T, int, bool) {
		var (
			best  T
			bestN = -1
		)
		for _, m := range ms {
			v, n, ok := m.Match(input)
			if ok && n > bestN {
				best, bestN = v, n
			}
		}
		return best, bestN, bestN >= 0
	})
}

// Map transforms the payload of m with f.
func Map[A, B any](m Matcher[A], f func(A) B) Matcher[B] {
	return Func[B](func(input []rune) (B, int, bool) {
		v, n, ok := m.Match(input)
		if !ok {
			var zero B
			return zero, 0, false
		}
		return f(v), n, true
	})
}

// Discard keeps the matching behaviour of m and drops its payload.
// It turns any matcher into a filler matcher.
func Discard[T any](m Matcher[T]) Matcher[struct{}] {
	return Map(m, func(T) struct{} { return struct{}{} })
}

// Literal matches exactly s. The payload is s.
func Literal(s string) Matcher[string] {
	want := []rune(s)
	return Func[string](func(input []rune) (string, int, bool) {
		if len(input) < len(want) {
			return "", 0, false
		}
		for i, r := range want {
			if input[i] != r {
				return "", 0, false
			}
		}
		return s, len(want), true
	})
}

// While matches one or more runes satisfying pred. The payload is the
// matched text.
func While(pred func(rune) bool) Matcher[string] {
	return Func[string](func(input []rune) (string, int, bool) {
		n := 0
		for n < len(input) && pred(input[n]) {
			n++
		}
		if n == 0 {
			return "", 0, false
		}
		return string(input[:n]), n, true
	})
}

// Empty matches the empty prefix of any input with payload v.
func Empty[T any](v T) Matcher[T] {
	return Func[T](func([]rune) (T, int, bool) {
		return v, 0, true
	})
}

// Never matches nothing.
func Never[T any]() Matcher[T] {
	return Func[T](func([]rune) (T, int, bool) {
		var zero T
		return zero, 0, false
	})
}
