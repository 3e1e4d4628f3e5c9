package lexer

// TokenStream is the complete, ordered token sequence for one input.
//
// It is consumed sequentially by a single parser. The stream always terminates with exactly
// one EOF token; once the cursor reaches it, Next keeps returning that EOF.
type TokenStream struct {
	cursor int
	tokens []Token
	eof    Token
}

var _ Lexer = &TokenStream{}

// NewTokenStream drains lex into a TokenStream.
func NewTokenStream(lex Lexer) (*TokenStream, error) {
	s := &TokenStream{}
	for {
		t, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if t.EOF() {
			s.eof = t
			break
		}
		s.tokens = append(s.tokens, t)
	}
	return s, nil
}

// Tokenize lexes input into a TokenStream.
//
// Lexing a string cannot fail, so neither can this.
func Tokenize(filename, input string) *TokenStream {
	return TokenizeAt(Position{Filename: filename, Line: 1, Column: 1}, input)
}

// TokenizeAt lexes input, which begins at start in its source, into a TokenStream.
func TokenizeAt(start Position, input string) *TokenStream {
	s, err := NewTokenStream(LexStringAt(start, input))
	if err != nil {
		panic(err)
	}
	return s
}

// Cursor is the index of the next token to be consumed.
func (s *TokenStream) Cursor() int {
	return s.cursor
}

// Len is the number of tokens in the stream, including the terminating EOF.
func (s *TokenStream) Len() int {
	return len(s.tokens) + 1
}

// Remaining is the number of tokens not yet consumed, excluding EOF.
func (s *TokenStream) Remaining() int {
	return len(s.tokens) - s.cursor
}

// Tokens returns every token in the stream, including the terminating EOF.
func (s *TokenStream) Tokens() []Token {
	out := make([]Token, 0, s.Len())
	out = append(out, s.tokens...)
	return append(out, s.eof)
}

// Range returns the non-EOF tokens between the two cursor points.
//
// Appending to the result never overwrites the stream.
func (s *TokenStream) Range(start, end int) []Token {
	return s.tokens[start:end:end]
}

// Next consumes and returns the next token.
func (s *TokenStream) Next() (Token, error) {
	return s.Consume(), nil
}

// Consume is Next without the error, which a TokenStream can never produce.
func (s *TokenStream) Consume() Token {
	if s.cursor < len(s.tokens) {
		s.cursor++
		return s.tokens[s.cursor-1]
	}
	return s.eof
}

// Peek at the next token without consuming it.
func (s *TokenStream) Peek() Token {
	if s.cursor < len(s.tokens) {
		return s.tokens[s.cursor]
	}
	return s.eof
}
