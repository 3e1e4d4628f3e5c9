package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// caseFile is the TOML layout read by verify:
//
//	[[case]]
//	name = "sum of two"
//	input = "1+2"
//	valid = true
//
//	[[case]]
//	input = "1+2+a"
//	errors = 1
type caseFile struct {
	Cases []testCase `toml:"case"`
}

type testCase struct {
	Name   string `toml:"name"`
	Input  string `toml:"input"`
	Valid  *bool  `toml:"valid"`
	Errors *int   `toml:"errors"`
}

func (c testCase) String() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("%q", c.Input)
}

// check returns a description of how count fails the case's expectation, or "".
func (c testCase) check(count int) string {
	if c.Errors != nil && *c.Errors != count {
		return fmt.Sprintf("expected %d syntax error(s), got %d", *c.Errors, count)
	}
	if c.Valid != nil && *c.Valid != (count == 0) {
		if *c.Valid {
			return fmt.Sprintf("expected valid input, got %d syntax error(s)", count)
		}
		return "expected syntax errors, got none"
	}
	return ""
}

func loadCases(path string) ([]testCase, error) {
	file := caseFile{}
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, ErrInvalidCase.New(path, "unknown keys "+strings.Join(keys, ", "))
	}
	if len(file.Cases) == 0 {
		return nil, ErrInvalidCase.New(path, "no cases")
	}
	for i, c := range file.Cases {
		if c.Valid == nil && c.Errors == nil {
			return nil, ErrInvalidCase.New(path, fmt.Sprintf("case %d (%s) has neither valid nor errors", i+1, c))
		}
		if c.Errors != nil && *c.Errors < 0 {
			return nil, ErrInvalidCase.New(path, fmt.Sprintf("case %d (%s) has negative errors", i+1, c))
		}
		if c.Valid != nil && c.Errors != nil && *c.Valid != (*c.Errors == 0) {
			return nil, ErrInvalidCase.New(path, fmt.Sprintf("case %d (%s) has contradictory valid and errors", i+1, c))
		}
	}
	return file.Cases, nil
}
