package lex

// Collect pulls every remaining token from s.
// It returns all of them, or nil and the error that stopped the stream.
func Collect[T any](s *Stream[T]) ([]Located[T], error) {
	var toks []Located[T]
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if toks == nil {
		toks = []Located[T]{}
	}
	return toks, nil
}
