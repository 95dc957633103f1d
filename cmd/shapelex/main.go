// Command shapelex tokenizes files with a built-in or YAML-defined grammar
// and prints one token per line.
//
// Usage:
//
//	shapelex [-grammar file.yaml | -builtin flow|calc] [-eager] [-json] [-tab N] [-wide] [files...]
//
// With no files, standard input is read. On a lexical error the error is
// printed to stderr and the exit status is 1. Tokens before the error are
// printed unless -eager is set.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/shapestone/shape-lex/internal/grammars"
	"github.com/shapestone/shape-lex/pkg/lex"
	"github.com/shapestone/shape-lex/pkg/source"
)

func main() {
	grammarPath := flag.String("grammar", "", "YAML grammar file")
	builtin := flag.String("builtin", "flow", "Built-in grammar when -grammar is not set: flow or calc")
	eager := flag.Bool("eager", false, "Lex the whole input before printing; print nothing on error")
	asJSON := flag.Bool("json", false, "Print tokens as JSON lines")
	tab := flag.Int("tab", 0, "Tab width for column numbers (default 8, or the grammar's tab_width)")
	wide := flag.Bool("wide", false, "Count East Asian wide characters as two columns")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [files...]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	lx, err := loadLexer(*grammarPath, *builtin)
	if err != nil {
		fatal("%v", err)
	}
	layout := lx.Layout()
	if *tab > 0 {
		layout.TabWidth = *tab
	}
	if *wide {
		layout.WideColumns = true
	}
	lx = lx.WithLayout(layout)

	out := newPrinter(os.Stdout, *asJSON)

	if flag.NArg() == 0 {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatal("reading stdin: %v", err)
		}
		if err := run(lx, out, "<stdin>", string(text), *eager); err != nil {
			fatal("%v", err)
		}
		return
	}

	for _, path := range flag.Args() {
		text, err := os.ReadFile(path)
		if err != nil {
			fatal("%v", err)
		}
		if err := run(lx, out, path, string(text), *eager); err != nil {
			fatal("%v", err)
		}
	}
}

func loadLexer(grammarPath, builtin string) (lex.Lexer[grammars.Lexeme], error) {
	if grammarPath != "" {
		g, err := grammars.LoadGrammar(grammarPath)
		if err != nil {
			return lex.Lexer[grammars.Lexeme]{}, err
		}
		return g.Lexer()
	}

	switch builtin {
	case "flow":
		return grammars.Flow(), nil
	case "calc":
		return grammars.Calc(), nil
	default:
		return lex.Lexer[grammars.Lexeme]{}, fmt.Errorf("unknown built-in grammar %q (want flow or calc)", builtin)
	}
}

// run lexes one source and prints its tokens.
func run(lx lex.Lexer[grammars.Lexeme], out *printer, name, text string, eager bool) error {
	if eager {
		toks, err := lx.Tokenize(name, text)
		if err != nil {
			return err
		}
		for _, tok := range toks {
			if err := out.print(tok); err != nil {
				return err
			}
		}
		return nil
	}

	for tok, err := range lx.Stream(name, text).All() {
		if err != nil {
			return err
		}
		if err := out.print(tok); err != nil {
			return err
		}
	}
	return nil
}

type printer struct {
	w    io.Writer
	enc  *json.Encoder
	json bool
}

func newPrinter(w io.Writer, asJSON bool) *printer {
	return &printer{w: w, enc: json.NewEncoder(w), json: asJSON}
}

type jsonPos struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

type jsonToken struct {
	Source string  `json:"source"`
	Kind   string  `json:"kind"`
	Text   string  `json:"text"`
	Start  jsonPos `json:"start"`
	End    jsonPos `json:"end"`
}

func toJSONPos(p source.Position) jsonPos {
	return jsonPos{Line: p.Line, Column: p.Column, Offset: p.Offset}
}

func (p *printer) print(tok lex.Located[grammars.Lexeme]) error {
	if !p.json {
		_, err := fmt.Fprintln(p.w, tok)
		return err
	}
	return p.enc.Encode(jsonToken{
		Source: tok.Span.Start.Source,
		Kind:   tok.Value.Kind,
		Text:   tok.Value.Text,
		Start:  toJSONPos(tok.Span.Start),
		End:    toJSONPos(tok.Span.End),
	})
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
