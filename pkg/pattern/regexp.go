package pattern

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// RegexpOption configures a matcher built by Regexp.
type RegexpOption func(*regexp2.Regexp)

// RegexpTimeout bounds the time a single match attempt may take.
// A match that times out is reported as no match.
func RegexpTimeout(d time.Duration) RegexpOption {
	return func(re *regexp2.Regexp) {
		re.MatchTimeout = d
	}
}

// Regexp compiles expr with github.com/dlclark/regexp2 and returns a matcher
// for prefixes of the input that match it. The payload is the matched text.
//
// regexp2 is a backtracking engine: within a single expression alternatives
// are tried left to right and the first one that succeeds is taken
// ("a|ab" matches "a" in "ab"). Use Alt across separate expressions, or
// POSIX, for longest-match semantics.
func Regexp(expr string, opts ...RegexpOption) (Matcher[string], error) {
	return RegexpWith(expr, regexp2.None, opts...)
}

// RegexpWith is Regexp with explicit regexp2 compile flags, such as
// regexp2.IgnoreCase or regexp2.Multiline.
func RegexpWith(expr string, flags regexp2.RegexOptions, opts ...RegexpOption) (Matcher[string], error) {
	re, err := regexp2.Compile(`\A(?:`+expr+`)`, flags)
	if err != nil {
		return nil, fmt.Errorf("pattern: compile %q: %w", expr, err)
	}
	for _, opt := range opts {
		opt(re)
	}
	return regexpMatcher{re: re}, nil
}

// MustRegexp is like Regexp but panics if expr does not compile.
func MustRegexp(expr string, opts ...RegexpOption) Matcher[string] {
	m, err := Regexp(expr, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

type regexpMatcher struct {
	re *regexp2.Regexp
}

func (m regexpMatcher) Match(input []rune) (string, int, bool) {
	match, err := m.re.FindRunesMatch(input)
	if err != nil || match == nil || match.Index != 0 {
		return "", 0, false
	}
	return match.String(), match.Length, true
}
