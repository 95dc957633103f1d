package pattern

import (
	"fmt"
	"io"
	"regexp"
	"unicode/utf8"
)

// POSIX compiles expr with the standard regexp package in leftmost-longest
// mode and returns a matcher for prefixes of the input that match it.
// The payload is the matched text.
//
// Unlike Regexp, alternatives inside one expression follow maximal munch:
// "a|ab" matches "ab" in "ab".
func POSIX(expr string) (Matcher[string], error) {
	re, err := regexp.Compile(`\A(?:` + expr + `)`)
	if err != nil {
		return nil, fmt.Errorf("pattern: compile %q: %w", expr, err)
	}
	re.Longest()
	return posixMatcher{re: re}, nil
}

// MustPOSIX is like POSIX but panics if expr does not compile.
func MustPOSIX(expr string) Matcher[string] {
	m, err := POSIX(expr)
	if err != nil {
		panic(err)
	}
	return m
}

type posixMatcher struct {
	re *regexp.Regexp
}

func (m posixMatcher) Match(input []rune) (string, int, bool) {
	loc := m.re.FindReaderIndex(&runeReader{runes: input})
	if loc == nil || loc[0] != 0 {
		return "", 0, false
	}

	// Convert the byte length reported by regexp back to runes.
	n, size := 0, 0
	for size < loc[1] {
		size += runeLen(input[n])
		n++
	}
	return string(input[:n]), n, true
}

// runeReader reads a rune slice for regexp's io.RuneReader entry points.
type runeReader struct {
	runes []rune
	pos   int
}

func (r *runeReader) ReadRune() (rune, int, error) {
	if r.pos >= len(r.runes) {
		return 0, 0, io.EOF
	}
	c := r.runes[r.pos]
	r.pos++
	return c, runeLen(c), nil
}

// runeLen is the encoded width of r, counting invalid runes as RuneError.
func runeLen(r rune) int {
	if n := utf8.RuneLen(r); n > 0 {
		return n
	}
	return utf8.RuneLen(utf8.RuneError)
}
