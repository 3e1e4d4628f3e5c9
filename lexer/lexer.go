package lexer

import (
	"io"
	"unicode/utf8"
)

// arithLexer is a Lexer over an in-memory string.
type arithLexer struct {
	input string
	base  int
	pos   Position
}

var _ Lexer = &arithLexer{}

// LexString returns a new arithmetic lexer over a string.
func LexString(filename, input string) Lexer {
	return LexStringAt(Position{Filename: filename, Line: 1, Column: 1}, input)
}

// LexStringAt returns a new arithmetic lexer over a string that begins at start.
//
// This is for input cut out of a larger source, such as one line of a file, so that token
// positions refer to the source rather than to the fragment.
func LexStringAt(start Position, input string) Lexer {
	return &arithLexer{input: input, base: start.Offset, pos: start}
}

// LexBytes returns a new arithmetic lexer over bytes.
func LexBytes(filename string, b []byte) Lexer {
	return LexString(filename, string(b))
}

// Lex reads all of r and returns a lexer over its content.
//
// If filename is empty the name of r is used, when it has one. The only possible error is
// one returned by r itself.
func Lex(filename string, r io.Reader) (Lexer, error) {
	if filename == "" {
		filename = NameOfReader(r)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, Errorf(Position{Filename: filename}, "read failed: %s", err)
	}
	return LexBytes(filename, b), nil
}

// NameOfReader attempts to retrieve the filename of a reader.
func NameOfReader(r interface{}) string {
	if nr, ok := r.(interface{ Name() string }); ok {
		return nr.Name()
	}
	return ""
}

// Next consumes and returns the next token.
//
// Once the input is exhausted every call returns an EOF token positioned just past the end.
func (l *arithLexer) Next() (Token, error) {
	start := l.pos.Offset - l.base
	if start >= len(l.input) {
		return EOFToken(l.pos), nil
	}
	r, size := utf8.DecodeRuneInString(l.input[start:])
	end := start + size
	typ := Unknown
	switch {
	case isDigit(r):
		typ = Number
		for end < len(l.input) && isDigit(rune(l.input[end])) {
			end++
		}
	case r == '+':
		typ = Plus
	}
	value := l.input[start:end]
	token := Token{Type: typ, Value: value, Pos: l.pos}
	l.pos = l.pos.Advance(value)
	return token, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
