// Package source describes locations in source text.
//
// A Position is a point between two characters of a named source. A Span is
// the half-open region between two positions. Positions are produced by a
// Layout, which defines how each character moves the line and column.
package source

import (
	"cmp"
	"strconv"
)

// Position is a point in a source text.
//
// Offset counts characters (runes) from the start of the text, Byte counts
// UTF-8 bytes. Line and Column are 1-based. Two positions of the same source
// are ordered by Offset.
type Position struct {
	Source string // Source identifier, usually a file name (may be empty)
	Offset int    // Character offset, starting at 0
	Byte   int    // Byte offset, starting at 0
	Line   int    // Line number, starting at 1
	Column int    // Column number, starting at 1
}

// Start returns the position at the very beginning of the named source.
func Start(src string) Position {
	return Position{Source: src, Line: 1, Column: 1}
}

// Compare orders positions by character offset.
// It returns -1 if p is before q, +1 if p is after q and 0 otherwise.
func (p Position) Compare(q Position) int {
	return cmp.Compare(p.Offset, q.Offset)
}

// Before reports whether p comes strictly before q.
func (p Position) Before(q Position) bool {
	return p.Offset < q.Offset
}

// IsZero reports whether p is the zero Position (not a valid location).
func (p Position) IsZero() bool {
	return p == Position{}
}

// String renders the position as "source:line:column", or "line:column"
// when the source has no name.
func (p Position) String() string {
	lc := strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
	if p.Source != "" {
		return p.Source + ":" + lc
	}
	return lc
}
