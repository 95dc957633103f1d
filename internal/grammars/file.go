package grammars

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/dlclark/regexp2"
	"github.com/shapestone/shape-lex/pkg/lex"
	"github.com/shapestone/shape-lex/pkg/pattern"
	"github.com/shapestone/shape-lex/pkg/source"
	"gopkg.in/yaml.v3"
)

// Engine names accepted in grammar files.
const (
	EngineRegexp2 = "regexp2"
	EnginePOSIX   = "posix"
)

// Grammar is a lexer description loaded from YAML:
//
//	engine: regexp2        # or posix; default regexp2
//	tab_width: 4           # optional
//	wide_columns: true     # optional
//	tokens:
//	  - kind: Number
//	    pattern: '[0-9]+'
//	  - kind: Plus
//	    literal: '+'
//	filler:
//	  - pattern: '\s+'
//
// Rules are alternatives in file order, so on equal-length matches the
// earlier rule wins.
type Grammar struct {
	Engine      string `yaml:"engine"`
	TabWidth    int    `yaml:"tab_width"`
	WideColumns bool   `yaml:"wide_columns"`
	Tokens      []Rule `yaml:"tokens"`
	Filler      []Rule `yaml:"filler"`
}

// Rule is one token or filler pattern. Exactly one of Pattern and Literal
// must be set.
type Rule struct {
	Kind       string `yaml:"kind"`
	Pattern    string `yaml:"pattern"`
	Literal    string `yaml:"literal"`
	IgnoreCase bool   `yaml:"ignore_case"`
}

// LoadGrammar reads a grammar file from disk.
func LoadGrammar(path string) (*Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("grammar: %w", err)
	}
	g, err := ReadGrammar(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ReadGrammar decodes and validates a grammar from r.
// Unknown fields are rejected.
func ReadGrammar(r io.Reader) (*Grammar, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var g Grammar
	if err := dec.Decode(&g); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("grammar: empty document")
		}
		return nil, fmt.Errorf("grammar: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// ParseGrammar decodes and validates a grammar from YAML text.
func ParseGrammar(data []byte) (*Grammar, error) {
	return ReadGrammar(bytes.NewReader(data))
}

// Validate checks the grammar for structural mistakes. It does not compile
// patterns; Lexer reports pattern errors.
func (g *Grammar) Validate() error {
	switch g.Engine {
	case "", EngineRegexp2, EnginePOSIX:
	default:
		return fmt.Errorf("grammar: unknown engine %q (want %q or %q)", g.Engine, EngineRegexp2, EnginePOSIX)
	}
	if g.TabWidth < 0 {
		return fmt.Errorf("grammar: tab_width must not be negative, got %d", g.TabWidth)
	}
	if len(g.Tokens) == 0 {
		return fmt.Errorf("grammar: no token rules")
	}
	for i, r := range g.Tokens {
		if r.Kind == "" {
			return fmt.Errorf("grammar: token rule %d: missing kind", i)
		}
		if err := r.validate(); err != nil {
			return fmt.Errorf("grammar: token rule %d (%s): %w", i, r.Kind, err)
		}
	}
	for i, r := range g.Filler {
		if err := r.validate(); err != nil {
			return fmt.Errorf("grammar: filler rule %d: %w", i, err)
		}
	}
	return nil
}

func (r Rule) validate() error {
	switch {
	case r.Pattern == "" && r.Literal == "":
		return errors.New("one of pattern or literal is required")
	case r.Pattern != "" && r.Literal != "":
		return errors.New("pattern and literal are mutually exclusive")
	}
	return nil
}

// Layout returns the position rule described by the grammar.
func (g *Grammar) Layout() source.Layout {
	return source.Layout{TabWidth: g.TabWidth, WideColumns: g.WideColumns}
}

// Lexer compiles the grammar into a lexer producing Lexeme tokens.
// The kind of a filler rule is ignored.
func (g *Grammar) Lexer() (lex.Lexer[Lexeme], error) {
	var (
		tokens []pattern.Matcher[Lexeme]
		filler []pattern.Matcher[string]
	)

	for i, r := range g.Tokens {
		m, err := g.compile(r)
		if err != nil {
			return lex.Lexer[Lexeme]{}, fmt.Errorf("grammar: token rule %d (%s): %w", i, r.Kind, err)
		}
		tokens = append(tokens, kinded(r.Kind, m))
	}
	for i, r := range g.Filler {
		m, err := g.compile(r)
		if err != nil {
			return lex.Lexer[Lexeme]{}, fmt.Errorf("grammar: filler rule %d: %w", i, err)
		}
		filler = append(filler, m)
	}

	lx := lex.Token(pattern.Alt(tokens...))
	if len(filler) > 0 {
		lx = lx.Append(lex.Whitespace[Lexeme](pattern.Alt(filler...)))
	}
	return lx.WithLayout(g.Layout()), nil
}

func (g *Grammar) compile(r Rule) (pattern.Matcher[string], error) {
	if r.Literal != "" && !r.IgnoreCase {
		return pattern.Literal(r.Literal), nil
	}

	// Case-insensitive literals go through the regex engine.
	switch g.Engine {
	case EnginePOSIX:
		expr := r.Pattern
		if r.Literal != "" {
			expr = regexp.QuoteMeta(r.Literal)
		}
		if r.IgnoreCase {
			expr = "(?i)" + expr
		}
		return pattern.POSIX(expr)
	default:
		expr := r.Pattern
		if r.Literal != "" {
			expr = regexp2.Escape(r.Literal)
		}
		flags := regexp2.None
		if r.IgnoreCase {
			flags = regexp2.IgnoreCase
		}
		return pattern.RegexpWith(expr, flags)
	}
}
