package lex

import (
	"errors"
	"testing"
)

// FuzzTokenize checks strategy equivalence and span ordering on random inputs
func FuzzTokenize(f *testing.F) {
	f.Add("12 34")
	f.Add("12 3a")
	f.Add("")
	f.Add("   ")
	f.Add("1\t2\n3")
	f.Add("日本 1")

	f.Fuzz(func(t *testing.T, input string) {
		eager, eagerErr := integers().Tokenize("fuzz", input)

		s := integers().Stream("fuzz", input)
		var lazy []Located[int]
		for tok, err := range s.All() {
			if err != nil {
				break
			}
			lazy = append(lazy, tok)
		}

		if eagerErr != nil {
			var e1, e2 *LexError
			if !errors.As(eagerErr, &e1) || !errors.As(s.Err(), &e2) || *e1 != *e2 {
				t.Fatalf("eager error %v, lazy error %v", eagerErr, s.Err())
			}
			return
		}
		if s.Err() != nil {
			t.Fatalf("lazy error %v without eager error", s.Err())
		}
		if len(eager) != len(lazy) {
			t.Fatalf("eager %d tokens, lazy %d tokens", len(eager), len(lazy))
		}
		for i := range eager {
			if eager[i] != lazy[i] {
				t.Fatalf("token %d: eager %v, lazy %v", i, eager[i], lazy[i])
			}
			if eager[i].Span.IsEmpty() {
				t.Fatalf("token %d has an empty span", i)
			}
			if i > 0 && eager[i].Span.Start.Before(eager[i-1].Span.End) {
				t.Fatalf("token %d overlaps token %d", i, i-1)
			}
		}
	})
}
