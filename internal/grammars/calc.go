package grammars

import (
	"github.com/shapestone/shape-lex/pkg/lex"
	"github.com/shapestone/shape-lex/pkg/pattern"
)

// Token kinds produced by Calc, besides the operator kinds in calcOperators.
const (
	KindNum     = "Num"
	KindIdent   = "Ident"
	KindKeyword = "Keyword"
)

// calcOperators maps operator text to its token kind.
var calcOperators = []struct {
	text, kind string
}{
	{"+", "Plus"},
	{"-", "Minus"},
	{"*", "Star"},
	{"/", "Slash"},
	{"^", "Caret"},
	{"(", "LParen"},
	{")", "RParen"},
	{"=", "Assign"},
	{"==", "Eq"},
	{"!=", "NotEq"},
	{"<", "Less"},
	{"<=", "LessEq"},
	{">", "Greater"},
	{">=", "GreaterEq"},
	{",", "Comma"},
}

// Calc returns a lexer for a small expression language:
//
//	let r = 2.5e3 // radius
//	in  area(r) >= r ^ 2 * pi
//
// Keywords are let, in, if, then and else. Whitespace and // comments are
// filler; "/" alone is division.
func Calc() lex.Lexer[Lexeme] {
	var ops []pattern.Matcher[Lexeme]
	for _, op := range calcOperators {
		ops = append(ops, kinded(op.kind, pattern.Literal(op.text)))
	}

	var keywords []pattern.Matcher[Lexeme]
	for _, kw := range []string{"let", "in", "if", "then", "else"} {
		keywords = append(keywords, kinded(KindKeyword, pattern.Literal(kw)))
	}

	tokens := lex.Token(pattern.Alt(
		kinded(KindNum, pattern.MustRegexp(`\d+(?:\.\d+)?(?:[eE][+-]?\d+)?`)),
		pattern.Alt(keywords...),
		kinded(KindIdent, pattern.MustRegexp(`[\p{L}_][\p{L}\p{Nd}_]*`)),
		pattern.Alt(ops...),
	))
	space := lex.Whitespace[Lexeme](pattern.MustRegexp(`\s+`))
	comment := lex.Whitespace[Lexeme](pattern.MustRegexp(`//[^\n]*`))

	return tokens.Append(space, comment)
}
