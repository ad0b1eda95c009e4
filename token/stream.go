package token

// Stream is a consuming iterator over scanned tokens. Once a token is
// returned by Next it is gone from the stream. The final token is always EOF.
type Stream struct {
	tokens []Token
	pos    int
}

// NewStream wraps a token slice. The slice is owned by the stream afterwards.
func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// EOF reports whether only the trailing EOF token (or nothing) remains.
func (s *Stream) EOF() bool {
	return s.pos >= len(s.tokens) || s.tokens[s.pos].Type == EOF
}

// Next consumes and returns the next token. At the end of the stream it
// keeps returning the EOF token.
func (s *Stream) Next() Token {
	t := s.Peek()
	if s.pos < len(s.tokens) {
		s.pos++
	}

	return t
}

// Peek returns the next token without consuming it.
func (s *Stream) Peek() Token {
	if s.pos >= len(s.tokens) {
		return Token{Type: EOF}
	}

	return s.tokens[s.pos]
}
