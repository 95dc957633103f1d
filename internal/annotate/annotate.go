// Package annotate pairs every character of a source text with its position.
package annotate

import (
	"iter"
	"unicode/utf8"

	"github.com/shapestone/shape-lex/pkg/source"
)

// Char is one annotated character.
//
// Start is the position immediately before the character (where it begins)
// and End the position immediately after it. A character's Start is always
// the End of the character preceding it.
type Char struct {
	Rune  rune
	Start source.Position
	End   source.Position
}

// Stream is the annotated remainder of a source text.
//
// A Stream is a value: Drop returns a new Stream and leaves the receiver
// untouched. Positions are computed as characters are dropped, so a full
// left-to-right consumption walks the text exactly once.
type Stream struct {
	text   string // remaining encoded text
	runes  []rune // remaining characters, same content as text
	pos    source.Position
	layout source.Layout
}

// Annotate returns the annotated stream of text, named src.
// Invalid UTF-8 bytes appear as utf8.RuneError and keep their original width.
func Annotate(src, text string, layout source.Layout) Stream {
	return Stream{
		text:   text,
		runes:  []rune(text),
		pos:    source.Start(src),
		layout: layout,
	}
}

// Empty reports whether no characters remain.
func (s Stream) Empty() bool {
	return len(s.runes) == 0
}

// Len returns the number of remaining characters.
func (s Stream) Len() int {
	return len(s.runes)
}

// Runes returns the remaining characters. The slice must not be modified.
func (s Stream) Runes() []rune {
	return s.runes
}

// Pos returns the Start of the next character, or the end-of-input position
// when the stream is empty.
func (s Stream) Pos() source.Position {
	return s.pos
}

// Head returns the next character without consuming it.
func (s Stream) Head() (Char, bool) {
	if s.Empty() {
		return Char{}, false
	}
	c, _ := s.next()
	return c, true
}

// Drop consumes n characters and returns the rest of the stream together
// with the last consumed character. n must be between 1 and Len.
func (s Stream) Drop(n int) (Stream, Char) {
	if n < 1 || n > len(s.runes) {
		panic("annotate: Drop out of range")
	}
	var last Char
	for i := 0; i < n; i++ {
		last, s = s.next()
	}
	return s, last
}

// Chars yields every remaining character in order.
func (s Stream) Chars() iter.Seq[Char] {
	return func(yield func(Char) bool) {
		rest := s
		for !rest.Empty() {
			var c Char
			c, rest = rest.next()
			if !yield(c) {
				return
			}
		}
	}
}

// next annotates the head character and returns the stream after it.
func (s Stream) next() (Char, Stream) {
	r := s.runes[0]
	_, size := utf8.DecodeRuneInString(s.text)

	c := Char{Rune: r, Start: s.pos}
	c.End = s.layout.Advance(s.pos, r, size)

	s.text = s.text[size:]
	s.runes = s.runes[1:]
	s.pos = c.End
	return c, s
}
