package pattern

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Shape adapts a shape-core tokenizer.Matcher.
//
// The matcher runs on a stream over the input slice itself, positioned at
// its start. The payload is the token it returns and the match length is the
// length of the token's value. As in tokenizer.Tokenizer, a token whose value
// is not a prefix of the input is rejected.
func Shape(m tokenizer.Matcher) Matcher[*tokenizer.Token] {
	return Func[*tokenizer.Token](func(input []rune) (*tokenizer.Token, int, bool) {
		if len(input) == 0 {
			return nil, 0, false
		}
		tok := m(newRuneStream(input))
		if tok == nil {
			return nil, 0, false
		}
		value := tok.Value()
		if !newRuneStream(input).MatchChars(value) {
			return nil, 0, false
		}
		return tok, len(value), true
	})
}

// ShapeKind is Shape with the token kind as payload.
func ShapeKind(m tokenizer.Matcher) Matcher[string] {
	return Map(Shape(m), func(tok *tokenizer.Token) string {
		return string(tok.Kind())
	})
}
