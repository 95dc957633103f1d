package source

import "fmt"

// Span is the half-open region [Start, End) of a source.
type Span struct {
	Start Position
	End   Position
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// IsEmpty reports whether the span covers no characters.
func (s Span) IsEmpty() bool {
	return s.Len() == 0
}

// Text returns the part of text covered by the span.
// text must be the same text the span's positions were computed over.
func (s Span) Text(text string) string {
	return text[s.Start.Byte:s.End.Byte]
}

// String renders the span as "source:line:col-line:col".
func (s Span) String() string {
	end := fmt.Sprintf("%d:%d", s.End.Line, s.End.Column)
	return s.Start.String() + "-" + end
}
