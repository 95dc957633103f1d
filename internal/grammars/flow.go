package grammars

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-lex/pkg/lex"
	"github.com/shapestone/shape-lex/pkg/pattern"
)

// Token kinds produced by Flow.
const (
	KindLBrace   = "LBrace"   // {
	KindRBrace   = "RBrace"   // }
	KindLBracket = "LBracket" // [
	KindRBracket = "RBracket" // ]
	KindColon    = "Colon"    // :
	KindComma    = "Comma"    // ,
	KindString   = "String"   // quoted or plain scalar
	KindNumber   = "Number"   // 123, -45.67, 1.23e10, 0x1A, 0o755
	KindTrue     = "True"     // true, yes, on in any case
	KindFalse    = "False"    // false, no, off in any case
	KindNull     = "Null"     // null, ~
	KindAnchor   = "Anchor"   // &name
	KindAlias    = "Alias"    // *name
)

// Flow returns a lexer for YAML flow-style collections, such as
//
//	{name: Alice, tags: [admin, "ops team"], age: 30}  # comment
//
// Spaces, tabs, newlines and # comments are filler.
//
// The alternatives do not need careful ordering: the longest match wins, so
// "trueish" is a plain String rather than True followed by junk. Keywords are
// listed before plain scalars so that "True" alone is True, and numbers
// before plain scalars so that "3.14" is a Number.
func Flow() lex.Lexer[Lexeme] {
	tokens := pattern.Alt(
		shaped(tokenizer.CharMatcherFunc(KindLBrace, '{')),
		shaped(tokenizer.CharMatcherFunc(KindRBrace, '}')),
		shaped(tokenizer.CharMatcherFunc(KindLBracket, '[')),
		shaped(tokenizer.CharMatcherFunc(KindRBracket, ']')),
		shaped(tokenizer.CharMatcherFunc(KindColon, ':')),
		shaped(tokenizer.CharMatcherFunc(KindComma, ',')),
		shaped(BooleanMatcher()),
		shaped(tokenizer.StringMatcherFunc(KindNull, "null")),
		shaped(tokenizer.CharMatcherFunc(KindNull, '~')),
		shaped(NumberMatcher()),
		shaped(AnchorMatcher()),
		shaped(AliasMatcher()),
		shaped(DoubleQuotedStringMatcher()),
		shaped(SingleQuotedStringMatcher()),
		shaped(PlainScalarMatcher()),
	)
	filler := pattern.Alt(
		pattern.Discard(pattern.Shape(WhitespaceMatcher())),
		pattern.Discard(pattern.Shape(NewlineMatcher())),
		pattern.Discard(pattern.Shape(CommentMatcher())),
	)
	return lex.New(tokens, filler)
}

// DoubleQuotedStringMatcher matches "..." with backslash escapes.
//
// Grammar:
//
//	String = '"' { Character } '"' ;
//	Character = UnescapedChar | EscapeSequence ;
//	EscapeSequence = "\\" ( SimpleEscape | YAMLEscape | UnicodeEscape ) ;
//	SimpleEscape = '"' | "\\" | "/" | "b" | "f" | "n" | "r" | "t" | "0" ;
//	YAMLEscape = "a" | "v" | "e" | " " | "N" | "_" | "L" | "P" ;
//	UnicodeEscape = "u" HexDigit{4} | "U" HexDigit{8} ;
//
// Raw control characters other than tab end the match unsuccessfully.
func DoubleQuotedStringMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		r, ok := stream.NextChar()
		if !ok || r != '"' {
			return nil
		}
		value = append(value, r)

		for {
			r, ok := stream.NextChar()
			if !ok {
				return nil
			}
			value = append(value, r)

			switch {
			case r == '"':
				return tokenizer.NewToken(KindString, value)
			case r == '\\':
				r, ok := stream.NextChar()
				if !ok {
					return nil
				}
				value = append(value, r)

				switch r {
				case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', '0':
				case 'a', 'v', 'e', ' ', 'N', '_', 'L', 'P':
				case 'u', 'U':
					digits := 4
					if r == 'U' {
						digits = 8
					}
					for i := 0; i < digits; i++ {
						r, ok := stream.NextChar()
						if !ok || !isHexDigit(r) {
							return nil
						}
						value = append(value, r)
					}
				default:
					return nil
				}
			case r < 0x20 && r != '\t':
				return nil
			}
		}
	}
}

// booleanKeywords are tried in order, so "off" comes before "on".
var booleanKeywords = []struct {
	word string
	kind string
}{
	{"false", KindFalse},
	{"true", KindTrue},
	{"yes", KindTrue},
	{"off", KindFalse},
	{"on", KindTrue},
	{"no", KindFalse},
}

// BooleanMatcher matches the YAML boolean keywords in any letter case.
// The token keeps the original spelling.
func BooleanMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		for _, kw := range booleanKeywords {
			cs := stream.Clone()
			if value := matchFold(cs, kw.word); value != nil {
				stream.Match(cs)
				return tokenizer.NewToken(kw.kind, value)
			}
		}
		return nil
	}
}

// matchFold consumes word from stream ignoring ASCII case and returns the
// consumed text, or nil on mismatch.
func matchFold(stream tokenizer.Stream, word string) []rune {
	value := make([]rune, 0, len(word))
	for i := 0; i < len(word); i++ {
		r, ok := stream.NextChar()
		if !ok {
			return nil
		}
		lower := r
		if r >= 'A' && r <= 'Z' {
			lower = r + ('a' - 'A')
		}
		if lower != rune(word[i]) {
			return nil
		}
		value = append(value, r)
	}
	return value
}

// SingleQuotedStringMatcher matches '...' where '' stands for one quote.
func SingleQuotedStringMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		r, ok := stream.NextChar()
		if !ok || r != '\'' {
			return nil
		}
		value = append(value, r)

		for {
			r, ok := stream.NextChar()
			if !ok {
				return nil
			}
			value = append(value, r)

			if r != '\'' {
				continue
			}
			next, ok := stream.PeekChar()
			if ok && next == '\'' {
				stream.NextChar()
				value = append(value, next)
				continue
			}
			return tokenizer.NewToken(KindString, value)
		}
	}
}

// PlainScalarMatcher matches an unquoted scalar.
//
// A plain scalar cannot start with an indicator character
// (- ? : , [ ] { } # & * ! | > ' " % @ `) and runs until whitespace or a
// flow indicator (: , [ ] { } #).
func PlainScalarMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || !isPlainStart(r) {
			return nil
		}

		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || isPlainStop(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		return tokenizer.NewToken(KindString, value)
	}
}

// NumberMatcher matches integers and floats with optional sign and exponent,
// plus hex and octal integers.
//
// Grammar:
//
//	Number = HexNumber | OctalNumber | DecimalNumber ;
//	HexNumber = "0x" HexDigit+ ;
//	OctalNumber = "0o" OctalDigit+ ;
//	DecimalNumber = [ "-" | "+" ] Digit+ [ Fraction ] [ Exponent ] ;
//	Fraction = "." Digit+ ;
//	Exponent = ( "e" | "E" ) [ "+" | "-" ] Digit+ ;
func NumberMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		take := func(pred func(rune) bool) bool {
			r, ok := stream.PeekChar()
			if !ok || !pred(r) {
				return false
			}
			stream.NextChar()
			value = append(value, r)
			return true
		}
		takeAll := func(pred func(rune) bool) int {
			n := 0
			for take(pred) {
				n++
			}
			return n
		}

		take(func(r rune) bool { return r == '-' || r == '+' })

		if take(func(r rune) bool { return r == '0' }) {
			switch {
			case take(func(r rune) bool { return r == 'x' || r == 'X' }):
				if takeAll(isHexDigit) == 0 {
					return nil
				}
				return tokenizer.NewToken(KindNumber, value)
			case take(func(r rune) bool { return r == 'o' || r == 'O' }):
				if takeAll(isOctalDigit) == 0 {
					return nil
				}
				return tokenizer.NewToken(KindNumber, value)
			}
			takeAll(isDigit)
		} else if takeAll(isDigit) == 0 {
			return nil
		}

		// Optional fraction
		if take(func(r rune) bool { return r == '.' }) {
			if takeAll(isDigit) == 0 {
				return nil
			}
		}

		// Optional exponent
		if take(func(r rune) bool { return r == 'e' || r == 'E' }) {
			take(func(r rune) bool { return r == '+' || r == '-' })
			if takeAll(isDigit) == 0 {
				return nil
			}
		}

		return tokenizer.NewToken(KindNumber, value)
	}
}

// AnchorMatcher matches &name where name is [a-zA-Z0-9_-]+.
func AnchorMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if value := scanSigilName(stream, '&'); value != nil {
			return tokenizer.NewToken(KindAnchor, value)
		}
		return nil
	}
}

// AliasMatcher matches *name where name is [a-zA-Z0-9_-]+.
func AliasMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if value := scanSigilName(stream, '*'); value != nil {
			return tokenizer.NewToken(KindAlias, value)
		}
		return nil
	}
}

// scanSigilName consumes sigil followed by a non-empty name and returns the
// consumed text, or nil if there is no such name.
func scanSigilName(stream tokenizer.Stream, sigil rune) []rune {
	r, ok := stream.NextChar()
	if !ok || r != sigil {
		return nil
	}
	value := []rune{r}

	for {
		r, ok := stream.PeekChar()
		if !ok || !isNameChar(r) {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 1 {
		return nil
	}
	return value
}

// CommentMatcher matches # up to, not including, the end of the line.
func CommentMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.NextChar()
		if !ok || r != '#' {
			return nil
		}
		value := []rune{r}

		for {
			r, ok := stream.PeekChar()
			if !ok || r == '\n' || r == '\r' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		return tokenizer.NewToken("Comment", value)
	}
}

// NewlineMatcher matches \n, \r\n or a lone \r.
func NewlineMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.NextChar()
		if !ok {
			return nil
		}
		switch r {
		case '\n':
			return tokenizer.NewToken("Newline", []rune{'\n'})
		case '\r':
			if next, ok := stream.PeekChar(); ok && next == '\n' {
				stream.NextChar()
				return tokenizer.NewToken("Newline", []rune{'\r', '\n'})
			}
			return tokenizer.NewToken("Newline", []rune{'\r'})
		}
		return nil
	}
}

// WhitespaceMatcher matches spaces and tabs, not newlines.
func WhitespaceMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || (r != ' ' && r != '\t') {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken("Whitespace", value)
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

func isNameChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || isDigit(r) || r == '_' || r == '-'
}

// isPlainStart reports whether r can start a plain scalar.
func isPlainStart(r rune) bool {
	switch r {
	case '-', '?', ':', ',', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
		return false
	case ' ', '\t', '\n', '\r':
		return false
	default:
		return true
	}
}

// isPlainStop reports whether r ends a plain scalar.
func isPlainStop(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', ':', ',', '[', ']', '{', '}', '#':
		return true
	default:
		return false
	}
}
