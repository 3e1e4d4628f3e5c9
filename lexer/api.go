package lexer

import (
	"fmt"
	"sort"
)

// TokenType identifies the kind of a Token.
type TokenType int

const (
	// EOF represents an end of file.
	EOF TokenType = -(iota + 1)
	// Number is a run of one or more ASCII digits.
	Number
	// Plus is the '+' operator.
	Plus
	// Unknown is any single rune the lexer does not otherwise recognise.
	Unknown
)

var symbolNames = map[TokenType]string{
	EOF:     "EOF",
	Number:  "Number",
	Plus:    "Plus",
	Unknown: "Unknown",
}

func (t TokenType) String() string {
	if name, ok := symbolNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Symbols returns a map of symbolic names to the corresponding token types.
//
// eg. "EOF" maps to EOF, "Number" maps to Number, and so on.
func Symbols() map[string]TokenType {
	out := make(map[string]TokenType, len(symbolNames))
	for t, name := range symbolNames {
		out[name] = t
	}
	return out
}

// SymbolsByType returns a map of symbol names keyed by token type.
func SymbolsByType() map[TokenType]string {
	out := make(map[TokenType]string, len(symbolNames))
	for t, name := range symbolNames {
		out[t] = name
	}
	return out
}

// SymbolNames returns the symbolic names of all token types in a stable order.
func SymbolNames() []string {
	out := make([]string, 0, len(symbolNames))
	for _, name := range symbolNames {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// MakeSymbolTable builds a lookup table for checking token type membership.
//
// For each symbolic name in "types", the returned map will contain the corresponding token type as a key.
func MakeSymbolTable(types ...string) (map[TokenType]bool, error) {
	symbols := Symbols()
	table := map[TokenType]bool{}
	for _, symbol := range types {
		t, ok := symbols[symbol]
		if !ok {
			return nil, fmt.Errorf("lexer does not support symbol %q", symbol)
		}
		table[t] = true
	}
	return table, nil
}

// A Lexer returns tokens from a source.
type Lexer interface {
	// Next consumes and returns the next token.
	Next() (Token, error)
}

// ConsumeAll reads all tokens from a Lexer, up to and including EOF.
func ConsumeAll(lexer Lexer) ([]Token, error) {
	tokens := make([]Token, 0, 16)
	for {
		token, err := lexer.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Type == EOF {
			return tokens, nil
		}
	}
}

// Position of a token.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{Filename: %q, Offset: %d, Line: %d, Column: %d}",
		p.Filename, p.Offset, p.Line, p.Column)
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Advance returns the position immediately after "span" has been read from p.
func (p Position) Advance(span string) Position {
	p.Offset += len(span)
	for _, r := range span {
		if r == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
	}
	return p
}

// A Token returned by a Lexer.
type Token struct {
	Type  TokenType
	Value string
	Pos   Position
}

// EOFToken creates a new EOF token at the given position.
func EOFToken(pos Position) Token {
	return Token{Type: EOF, Pos: pos}
}

// EOF returns true if this Token is an EOF token.
func (t Token) EOF() bool {
	return t.Type == EOF
}

func (t Token) String() string {
	if t.EOF() {
		return "<EOF>"
	}
	return t.Value
}

func (t Token) GoString() string {
	if t.Pos == (Position{}) {
		return fmt.Sprintf("Token{%s, %q}", t.Type, t.Value)
	}
	return fmt.Sprintf("Token@%s{%s, %q}", t.Pos.String(), t.Type, t.Value)
}
