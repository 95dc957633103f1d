package pattern

import "github.com/shapestone/shape-core/pkg/tokenizer"

// runeStream is a tokenizer.Stream over a rune slice that is already in
// memory. Clones share the slice and copy only the cursor.
type runeStream struct {
	data   []rune
	cursor int
	row    int
	column int
}

var _ tokenizer.Stream = (*runeStream)(nil)

func newRuneStream(data []rune) *runeStream {
	return &runeStream{data: data, row: 1, column: 1}
}

func (s *runeStream) Clone() tokenizer.Stream {
	c := *s
	return &c
}

// Match moves s to the location of other, which must be a clone of s.
func (s *runeStream) Match(other tokenizer.Stream) {
	o, ok := other.(*runeStream)
	if !ok {
		panic("pattern: Match with a foreign stream")
	}
	if len(o.data) != len(s.data) || (len(s.data) > 0 && &o.data[0] != &s.data[0]) {
		panic("pattern: Match with an unrelated stream")
	}
	s.cursor, s.row, s.column = o.cursor, o.row, o.column
}

func (s *runeStream) PeekChar() (rune, bool) {
	if s.IsEos() {
		return 0, false
	}
	return s.data[s.cursor], true
}

func (s *runeStream) NextChar() (rune, bool) {
	if s.IsEos() {
		return 0, false
	}
	r := s.data[s.cursor]
	s.cursor++
	s.column++
	if r == '\n' {
		s.row++
		s.column = 1
	}
	return r, true
}

// MatchChars advances past match if the stream continues with it and
// leaves the stream unchanged otherwise.
func (s *runeStream) MatchChars(match []rune) bool {
	if len(match) > len(s.data)-s.cursor {
		return false
	}
	save := *s
	for _, want := range match {
		if r, _ := s.NextChar(); r != want {
			*s = save
			return false
		}
	}
	return true
}

func (s *runeStream) IsEos() bool { return s.cursor >= len(s.data) }

func (s *runeStream) GetRow() int    { return s.row }
func (s *runeStream) GetOffset() int { return s.cursor }
func (s *runeStream) GetColumn() int { return s.column }

func (s *runeStream) GetLocation() tokenizer.Location {
	return tokenizer.Location{Cursor: s.cursor, Row: s.row, Column: s.column}
}

func (s *runeStream) SetLocation(loc tokenizer.Location) {
	s.cursor, s.row, s.column = loc.Cursor, loc.Row, loc.Column
}

func (s *runeStream) Reset() {
	s.cursor, s.row, s.column = 0, 1, 1
}
