package main

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrInvalidInput is returned by check when any input has syntax errors.
	ErrInvalidInput = errors.NewKind("%d of %d inputs have syntax errors")
	// ErrCasesFailed is returned by verify when any case does not meet its expectation.
	ErrCasesFailed = errors.NewKind("%d of %d cases failed")
	// ErrInvalidCase is returned when a case file is malformed.
	ErrInvalidCase = errors.NewKind("%s: %s")
	// ErrUnknownTokenType is returned by tokens when --only names a type the lexer lacks.
	ErrUnknownTokenType = errors.NewKind("invalid token type filter (types are %s)")
)
