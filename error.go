package beispiel

import (
	"fmt"
	"strings"

	"gopkg.in/src-d/go-errors.v1"

	"github.com/omg/beispiel/lexer"
)

var (
	// ErrInvalidOption is returned by New when an Option is given an unusable value.
	ErrInvalidOption = errors.NewKind("invalid option: %s")
	// ErrNoTokenStream is returned by New when it is given a nil stream.
	ErrNoTokenStream = errors.NewKind("parser requires a token stream")
	// ErrTooManyErrors is carried by SyntaxErrors when the parser gave up after MaxErrors.
	ErrTooManyErrors = errors.NewKind("too many syntax errors (limit %d), remaining input skipped")
)

// Error represents an error while parsing.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() lexer.Position
}

var (
	_ Error = &SyntaxError{}
	_ Error = &lexer.Error{}
)

// SyntaxError is a point where the token stream does not match the grammar.
type SyntaxError struct {
	Unexpected lexer.Token
	Expected   []lexer.TokenType
}

func (s *SyntaxError) Error() string {
	return lexer.FormatError(s.Unexpected.Pos, s.Message())
}

func (s *SyntaxError) Message() string { // nolint: golint
	var expected string
	if len(s.Expected) > 0 {
		names := make([]string, 0, len(s.Expected))
		for _, t := range s.Expected {
			names = append(names, t.String())
		}
		expected = fmt.Sprintf(" (expected %s)", strings.Join(names, " or "))
	}
	if s.Unexpected.EOF() {
		return "unexpected end of input" + expected
	}
	return fmt.Sprintf("unexpected token %q%s", s.Unexpected.Value, expected)
}

func (s *SyntaxError) Position() lexer.Position { return s.Unexpected.Pos } // nolint: golint

// SyntaxErrors is every syntax error reported during one parse.
type SyntaxErrors struct {
	Errors []*SyntaxError
	// Limit is an ErrTooManyErrors error if the parser stopped matching early.
	Limit error
}

func (s *SyntaxErrors) Error() string {
	lines := make([]string, 0, len(s.Errors)+1)
	for _, err := range s.Errors {
		lines = append(lines, err.Error())
	}
	if s.Limit != nil {
		lines = append(lines, s.Limit.Error())
	}
	if len(lines) == 0 {
		return "no errors"
	}
	return strings.Join(lines, "\n")
}

// Unwrap returns the individual errors for errors.Is/As.
func (s *SyntaxErrors) Unwrap() []error {
	out := make([]error, 0, len(s.Errors)+1)
	for _, err := range s.Errors {
		out = append(out, err)
	}
	if s.Limit != nil {
		out = append(out, s.Limit)
	}
	return out
}
