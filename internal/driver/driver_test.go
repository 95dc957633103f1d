package driver

import (
	"strconv"
	"testing"
	"unicode"

	"github.com/shapestone/shape-lex/internal/annotate"
	"github.com/shapestone/shape-lex/pkg/pattern"
	"github.com/shapestone/shape-lex/pkg/source"
)

// integers is the example grammar: digits are tokens, spaces are filler
func integers() pattern.Matcher[Outcome[int]] {
	digits := pattern.Map(pattern.While(unicode.IsDigit), func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	})
	spaces := pattern.Discard(pattern.While(func(r rune) bool { return r == ' ' }))
	return Combine(digits, spaces)
}

// run drives the scanner to a terminal step and returns all steps
func run[T any](m pattern.Matcher[Outcome[T]], text string) []Step[T] {
	d := New(m, annotate.Annotate("t", text, source.Layout{}))
	var steps []Step[T]
	for {
		s := d.Step()
		steps = append(steps, s)
		if s.Kind == End || s.Kind == Fail {
			return steps
		}
	}
}

func kinds[T any](steps []Step[T]) []Kind {
	ks := make([]Kind, len(steps))
	for i, s := range steps {
		ks[i] = s.Kind
	}
	return ks
}

func equalKinds(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestDriver_Steps tests the state transitions on the example inputs
func TestDriver_Steps(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Kind
		endOff  int
		wantTok []int
	}{
		{"empty", "", []Kind{End}, 0, nil},
		{"two integers", "12 34", []Kind{Emit, Skip, Emit, End}, 5, []int{12, 34}},
		{"trailing filler", "7  ", []Kind{Emit, Skip, End}, 3, []int{7}},
		{"leading filler", " 7", []Kind{Skip, Emit, End}, 2, []int{7}},
		{"bad char", "12 3a", []Kind{Emit, Skip, Emit, Fail}, 4, []int{12, 3}},
		{"bad first char", "x1", []Kind{Fail}, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := run(integers(), tt.input)
			if got := kinds(steps); !equalKinds(got, tt.want) {
				t.Fatalf("kinds = %v, want %v", got, tt.want)
			}

			var toks []int
			for _, s := range steps {
				if s.Kind == Emit {
					toks = append(toks, s.Token)
				}
			}
			if len(toks) != len(tt.wantTok) {
				t.Fatalf("tokens = %v, want %v", toks, tt.wantTok)
			}
			for i := range toks {
				if toks[i] != tt.wantTok[i] {
					t.Errorf("token %d = %d, want %d", i, toks[i], tt.wantTok[i])
				}
			}

			last := steps[len(steps)-1]
			if last.Pos.Offset != tt.endOff {
				t.Errorf("terminal Pos offset = %d, want %d", last.Pos.Offset, tt.endOff)
			}
		})
	}
}

// TestDriver_Spans tests span computation, including at end of input
func TestDriver_Spans(t *testing.T) {
	steps := run(integers(), "12 34")

	want := [][2]int{{0, 2}, {2, 3}, {3, 5}}
	for i, w := range want {
		s := steps[i].Span
		if s.Start.Offset != w[0] || s.End.Offset != w[1] {
			t.Errorf("step %d span = %d-%d, want %d-%d", i, s.Start.Offset, s.End.Offset, w[0], w[1])
		}
	}
}

// TestDriver_ZeroLengthMatch tests that an empty match fails instead of looping
func TestDriver_ZeroLengthMatch(t *testing.T) {
	// Filler "x*" matches the empty string everywhere
	tokens := pattern.Map(pattern.While(unicode.IsDigit), func(s string) string { return s })
	filler := pattern.Discard(pattern.MustPOSIX(`x*`))

	steps := run(Combine(tokens, filler), "1xx2-3")
	want := []Kind{Emit, Skip, Emit, Fail}
	if got := kinds(steps); !equalKinds(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if pos := steps[3].Pos.Offset; pos != 4 {
		t.Errorf("Fail offset = %d, want 4", pos)
	}
}

// TestDriver_TokenBeatsFillerOnTie tests the tie-break between grammars
func TestDriver_TokenBeatsFillerOnTie(t *testing.T) {
	tokens := pattern.Literal("--")
	filler := pattern.Discard(pattern.Literal("--"))

	steps := run(Combine(tokens, filler), "--")
	if steps[0].Kind != Emit {
		t.Errorf("equal-length match kind = %v, want Emit", steps[0].Kind)
	}

	// A longer filler match still wins
	filler = pattern.Discard(pattern.Literal("---"))
	steps = run(Combine(tokens, filler), "---")
	if steps[0].Kind != Skip {
		t.Errorf("longer filler kind = %v, want Skip", steps[0].Kind)
	}
}

// TestDriver_TerminalIsSticky tests repeated calls after End and Fail
func TestDriver_TerminalIsSticky(t *testing.T) {
	d := New(integers(), annotate.Annotate("", "a", source.Layout{}))
	first := d.Step()
	for i := 0; i < 3; i++ {
		if s := d.Step(); s != first {
			t.Errorf("call %d = %+v, want %+v", i, s, first)
		}
	}
	if d.Pos() != first.Pos {
		t.Errorf("Pos() = %v, want %v", d.Pos(), first.Pos)
	}
}

// TestDriver_NilGrammars tests combining with missing grammars
func TestDriver_NilGrammars(t *testing.T) {
	steps := run(Combine[string](nil, nil), "a")
	if steps[0].Kind != Fail {
		t.Errorf("kind = %v, want Fail", steps[0].Kind)
	}
	steps = run(Combine[string](nil, nil), "")
	if steps[0].Kind != End {
		t.Errorf("kind = %v, want End", steps[0].Kind)
	}
}

// TestDriver_OverlongMatchPanics tests the matcher contract check
func TestDriver_OverlongMatchPanics(t *testing.T) {
	bad := pattern.Func[Outcome[int]](func(input []rune) (Outcome[int], int, bool) {
		return Outcome[int]{}, len(input) + 1, true
	})

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	New(bad, annotate.Annotate("", "ab", source.Layout{})).Step()
}

// TestKindString tests step kind names
func TestKindString(t *testing.T) {
	if Emit.String() != "Emit" || Fail.String() != "Fail" || Kind(9).String() != "Kind(9)" {
		t.Error("unexpected Kind names")
	}
}

// TestDriver_Coverage tests that emitted and skipped spans tile the input
func TestDriver_Coverage(t *testing.T) {
	input := "  1 22   333 "
	steps := run(integers(), input)

	prev := source.Start("t")
	for i, s := range steps {
		if s.Kind == End {
			break
		}
		if s.Span.Start != prev {
			t.Errorf("step %d starts at %d, want %d", i, s.Span.Start.Offset, prev.Offset)
		}
		if s.Span.IsEmpty() {
			t.Errorf("step %d has an empty span", i)
		}
		prev = s.Span.End
	}
	if prev.Byte != len(input) {
		t.Errorf("spans end at byte %d, want %d", prev.Byte, len(input))
	}
}
