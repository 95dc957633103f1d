package source

import (
	"golang.org/x/text/width"
)

// DefaultTabWidth is the tab stop distance used when Layout.TabWidth is not set.
const DefaultTabWidth = 8

// Layout is the position-advance rule: it decides how a character moves the
// line and column of a Position.
//
// The zero Layout uses tab stops every DefaultTabWidth columns and counts
// every other character as one column.
type Layout struct {
	// TabWidth is the distance between tab stops. Values < 1 mean DefaultTabWidth.
	TabWidth int

	// WideColumns makes East Asian wide and fullwidth characters occupy two
	// columns, as they do in a terminal.
	WideColumns bool
}

// Advance returns the position immediately after character r, which starts
// at p and occupies size bytes of the encoded text.
//
// Rules:
//   - '\n' moves to column 1 of the next line
//   - '\t' moves to the next tab stop
//   - anything else moves one column right (two for wide characters when
//     WideColumns is set)
//
// The offset always grows by exactly one.
func (l Layout) Advance(p Position, r rune, size int) Position {
	p.Offset++
	p.Byte += size

	switch r {
	case '\n':
		p.Line++
		p.Column = 1
	case '\t':
		tab := l.TabWidth
		if tab < 1 {
			tab = DefaultTabWidth
		}
		p.Column = ((p.Column-1)/tab+1)*tab + 1
	default:
		p.Column += l.columns(r)
	}
	return p
}

// columns returns how many columns r occupies.
func (l Layout) columns(r rune) int {
	if !l.WideColumns {
		return 1
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
