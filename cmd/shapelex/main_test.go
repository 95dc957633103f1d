package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shapestone/shape-lex/internal/grammars"
)

// TestRun_Lazy tests that tokens before an error are printed
func TestRun_Lazy(t *testing.T) {
	var buf bytes.Buffer
	err := run(grammars.Calc(), newPrinter(&buf, false), "in", "1 + $", false)
	if err == nil || err.Error() != "lexical error at in:1:5" {
		t.Fatalf("run() error = %v, want lexical error at in:1:5", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{`in:1:1-1:2 Num "1"`, `in:1:3-1:4 Plus "+"`}
	if len(lines) != len(want) {
		t.Fatalf("printed %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

// TestRun_Eager tests that nothing is printed on error
func TestRun_Eager(t *testing.T) {
	var buf bytes.Buffer
	if err := run(grammars.Calc(), newPrinter(&buf, false), "in", "1 + $", true); err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Errorf("eager run printed %q on error", buf.String())
	}
}

// TestRun_JSON tests JSON line output
func TestRun_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := run(grammars.Flow(), newPrinter(&buf, true), "doc", "{a: 1}", true); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	dec := json.NewDecoder(&buf)
	var toks []jsonToken
	for dec.More() {
		var tok jsonToken
		if err := dec.Decode(&tok); err != nil {
			t.Fatalf("decode: %v", err)
		}
		toks = append(toks, tok)
	}
	if len(toks) != 5 {
		t.Fatalf("got %d tokens, want 5", len(toks))
	}
	if toks[3].Kind != grammars.KindNumber || toks[3].Start.Offset != 4 || toks[3].End.Column != 6 {
		t.Errorf("token 3 = %+v", toks[3])
	}
	if toks[0].Source != "doc" {
		t.Errorf("source = %q, want doc", toks[0].Source)
	}
}

// TestLoadLexer tests grammar selection
func TestLoadLexer(t *testing.T) {
	if _, err := loadLexer("", "calc"); err != nil {
		t.Errorf("calc: %v", err)
	}
	if _, err := loadLexer("", "cobol"); err == nil {
		t.Error("expected error for unknown built-in")
	}
	lx, err := loadLexer("../../internal/grammars/testdata/ini.yaml", "")
	if err != nil {
		t.Fatalf("grammar file: %v", err)
	}
	if lx.Layout().TabWidth != 4 {
		t.Errorf("tab width = %d, want 4", lx.Layout().TabWidth)
	}
}
