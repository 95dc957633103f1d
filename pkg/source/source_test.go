package source

import (
	"testing"
	"unicode/utf8"
)

// TestLayoutAdvance tests the position-advance rule for each character class
func TestLayoutAdvance(t *testing.T) {
	tests := []struct {
		name     string
		layout   Layout
		from     Position
		r        rune
		wantLine int
		wantCol  int
	}{
		{"plain char", Layout{}, Position{Line: 1, Column: 1}, 'a', 1, 2},
		{"newline", Layout{}, Position{Line: 3, Column: 7}, '\n', 4, 1},
		{"tab from column 1", Layout{}, Position{Line: 1, Column: 1}, '\t', 1, 9},
		{"tab from column 5", Layout{}, Position{Line: 1, Column: 5}, '\t', 1, 9},
		{"tab on stop", Layout{}, Position{Line: 1, Column: 9}, '\t', 1, 17},
		{"tab width 4", Layout{TabWidth: 4}, Position{Line: 1, Column: 2}, '\t', 1, 5},
		{"wide char, narrow layout", Layout{}, Position{Line: 1, Column: 1}, '世', 1, 2},
		{"wide char, wide layout", Layout{WideColumns: true}, Position{Line: 1, Column: 1}, '世', 1, 3},
		{"fullwidth char", Layout{WideColumns: true}, Position{Line: 1, Column: 1}, 'Ａ', 1, 3},
		{"ascii in wide layout", Layout{WideColumns: true}, Position{Line: 1, Column: 1}, 'x', 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.layout.Advance(tt.from, tt.r, utf8.RuneLen(tt.r))
			if got.Line != tt.wantLine || got.Column != tt.wantCol {
				t.Errorf("Advance(%q) = %d:%d, want %d:%d", tt.r, got.Line, got.Column, tt.wantLine, tt.wantCol)
			}
			if got.Offset != tt.from.Offset+1 {
				t.Errorf("Offset = %d, want %d", got.Offset, tt.from.Offset+1)
			}
			if got.Byte != tt.from.Byte+utf8.RuneLen(tt.r) {
				t.Errorf("Byte = %d, want %d", got.Byte, tt.from.Byte+utf8.RuneLen(tt.r))
			}
		})
	}
}

// TestPositionString tests position rendering with and without a source name
func TestPositionString(t *testing.T) {
	p := Position{Source: "main.calc", Line: 2, Column: 5}
	if got := p.String(); got != "main.calc:2:5" {
		t.Errorf("String() = %q, want %q", got, "main.calc:2:5")
	}

	p.Source = ""
	if got := p.String(); got != "2:5" {
		t.Errorf("String() = %q, want %q", got, "2:5")
	}
}

// TestPositionOrder tests ordering by offset
func TestPositionOrder(t *testing.T) {
	a := Position{Offset: 3, Line: 1, Column: 4}
	b := Position{Offset: 4, Line: 2, Column: 1}

	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before: expected %v before %v", a, b)
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare gave inconsistent results")
	}
}

// TestStart tests the start position of a source
func TestStart(t *testing.T) {
	p := Start("in")
	want := Position{Source: "in", Offset: 0, Byte: 0, Line: 1, Column: 1}
	if p != want {
		t.Errorf("Start() = %+v, want %+v", p, want)
	}
	if p.IsZero() {
		t.Error("Start() should not be the zero position")
	}
}

// TestSpan tests span length, text extraction and rendering
func TestSpan(t *testing.T) {
	text := "héllo wörld"
	l := Layout{}

	// Walk to the start and end of "wörld"
	p := Start("t")
	var start Position
	for i, r := range text {
		if i == 7 {
			start = p
		}
		p = l.Advance(p, r, utf8.RuneLen(r))
	}

	s := Span{Start: start, End: p}
	if got := s.Text(text); got != "wörld" {
		t.Errorf("Text() = %q, want %q", got, "wörld")
	}
	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
	if s.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if got := s.String(); got != "t:1:7-1:12" {
		t.Errorf("String() = %q, want %q", got, "t:1:7-1:12")
	}

	empty := Span{Start: p, End: p}
	if !empty.IsEmpty() || empty.Text(text) != "" {
		t.Error("zero-width span should be empty")
	}
}
