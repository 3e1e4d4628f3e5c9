package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	require "github.com/alecthomas/assert/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gopkg.in/yaml.v3"

	"github.com/omg/beispiel"
	"github.com/omg/beispiel/lexer"
)

type testEnv struct {
	*runContext
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	hook   *test.Hook
}

func newTestEnv() *testEnv {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &testEnv{
		runContext: &runContext{Stdout: stdout, Stderr: stderr, Log: log},
		stdout:     stdout,
		stderr:     stderr,
		hook:       hook,
	}
}

func TestCheckValid(t *testing.T) {
	env := newTestEnv()
	cmd := &checkCmd{Report: "console", Inputs: []string{"1+2", "12+34+5"}}
	require.NoError(t, cmd.Run(env.runContext))
	require.Equal(t, "\"1+2\": 0 syntax error(s)\n\"12+34+5\": 0 syntax error(s)\n", env.stdout.String())
	require.Equal(t, "", env.stderr.String())
	require.Equal(t, 2, len(env.hook.Entries))
}

func TestCheckInvalid(t *testing.T) {
	env := newTestEnv()
	cmd := &checkCmd{Report: "console", Tree: true, Inputs: []string{"1+2", "1+2+a"}}
	err := cmd.Run(env.runContext)
	require.Error(t, err)
	require.True(t, ErrInvalidInput.Is(err))
	require.Equal(t, "1 of 2 inputs have syntax errors", err.Error())
	require.Equal(t, `"1+2": 0 syntax error(s)
  (start 1 + 2)
"1+2+a": 1 syntax error(s)
  (start 1 + 2 + <error a>)
`, env.stdout.String())
	require.Equal(t, "line 1:5 unexpected token \"a\" (expected Number)\n", env.stderr.String())
}

func TestCheckReportLog(t *testing.T) {
	env := newTestEnv()
	cmd := &checkCmd{Report: "log", Inputs: []string{"x"}}
	require.Error(t, cmd.Run(env.runContext))
	require.Equal(t, "", env.stderr.String())
	warnings := 0
	for _, entry := range env.hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warnings++
			require.Equal(t, `unexpected token "x" (expected Number)`, entry.Message)
		}
	}
	require.Equal(t, 1, warnings)
}

func TestCheckOptions(t *testing.T) {
	env := newTestEnv()
	cmd := &checkCmd{Report: "none", Tree: true, Resync: true, Inputs: []string{"1+a2+3"}}
	require.Error(t, cmd.Run(env.runContext))
	require.Contains(t, env.stdout.String(), "(start 1 + <error a> <error 2> + 3)")

	env = newTestEnv()
	cmd = &checkCmd{Report: "none", Tree: true, MaxErrors: 1, Inputs: []string{"a+b"}}
	require.Error(t, cmd.Run(env.runContext))
	require.Contains(t, env.stdout.String(), "(start <error a> <error +> <error b>)")

	cmd = &checkCmd{Report: "none", MaxErrors: -1, Inputs: []string{"1"}}
	err := cmd.Run(newTestEnv().runContext)
	require.True(t, beispiel.ErrInvalidOption.Is(err))
}

func TestCheckFiles(t *testing.T) {
	env := newTestEnv()
	path := filepath.Join("testdata", "inputs.txt")
	cmd := &checkCmd{Files: true, Report: "none", Inputs: []string{path}}
	err := cmd.Run(env.runContext)
	require.True(t, ErrInvalidInput.Is(err))
	require.Equal(t, path+":1: 0 syntax error(s)\n"+
		path+":2: 1 syntax error(s)\n"+
		path+":3: 0 syntax error(s)\n", env.stdout.String())

	cmd = &checkCmd{Files: true, Inputs: []string{filepath.Join(t.TempDir(), "missing.txt")}}
	require.Error(t, cmd.Run(env.runContext))
}

func TestReadLinesCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crlf.txt")
	require.NoError(t, os.WriteFile(path, []byte("1+2\r\n3\r\n"), 0o600))
	lines, err := readLines(path)
	require.NoError(t, err)
	require.Equal(t, []fileLine{
		{start: lexer.Position{Filename: path, Offset: 0, Line: 1, Column: 1}, text: "1+2"},
		{start: lexer.Position{Filename: path, Offset: 5, Line: 2, Column: 1}, text: "3"},
	}, lines)
}

func TestCheckFilesReportsFilePositions(t *testing.T) {
	path := filepath.Join("testdata", "inputs.txt")
	env := newTestEnv()
	cmd := &checkCmd{Files: true, Report: "console", Inputs: []string{path}}
	require.True(t, ErrInvalidInput.Is(cmd.Run(env.runContext)))
	require.Equal(t, "line 2:5 unexpected token \"a\" (expected Number)\n", env.stderr.String())

	env = newTestEnv()
	cmd = &checkCmd{Files: true, Report: "log", Inputs: []string{path}}
	require.True(t, ErrInvalidInput.Is(cmd.Run(env.runContext)))
	var warning *logrus.Entry
	for _, entry := range env.hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warning = entry
		}
	}
	require.True(t, warning != nil, "expected a warning")
	require.Equal(t, interface{}(path), warning.Data["file"])
	require.Equal(t, interface{}(2), warning.Data["line"])
	require.Equal(t, interface{}(5), warning.Data["column"])
	require.Equal(t, interface{}(8), warning.Data["offset"])
}

func TestTokensText(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, (&tokensCmd{Format: "text", Input: "1+a"}).Run(env.runContext))
	require.Equal(t, `Number   "1"      1:1
Plus     "+"      1:2
Unknown  "a"      1:3
EOF      "<EOF>"  1:4
`, env.stdout.String())
}

func TestTokensJSON(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, (&tokensCmd{Format: "json", Input: "12+3"}).Run(env.runContext))
	var out []tokenRecord
	require.NoError(t, json.Unmarshal(env.stdout.Bytes(), &out))
	require.Equal(t, []tokenRecord{
		{Type: "Number", Value: "12", Offset: 0, Line: 1, Column: 1},
		{Type: "Plus", Value: "+", Offset: 2, Line: 1, Column: 3},
		{Type: "Number", Value: "3", Offset: 3, Line: 1, Column: 4},
		{Type: "EOF", Value: "", Offset: 4, Line: 1, Column: 5},
	}, out)
}

func TestTokensYAML(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, (&tokensCmd{Format: "yaml", Input: "7"}).Run(env.runContext))
	var out []tokenRecord
	require.NoError(t, yaml.Unmarshal(env.stdout.Bytes(), &out))
	require.Equal(t, 2, len(out))
	require.Equal(t, "Number", out[0].Type)
	require.Equal(t, "EOF", out[1].Type)
}

func TestTokensRepr(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, (&tokensCmd{Format: "repr", Input: "1"}).Run(env.runContext))
	require.Contains(t, env.stdout.String(), `"1"`)
}

func TestTokensOnly(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, (&tokensCmd{Format: "text", Only: []string{"Number", "EOF"}, Input: "1+a+23"}).Run(env.runContext))
	require.Equal(t, `Number   "1"      1:1
Number   "23"     1:5
EOF      "<EOF>"  1:7
`, env.stdout.String())

	err := (&tokensCmd{Format: "text", Only: []string{"Minus"}, Input: "1"}).Run(newTestEnv().runContext)
	require.True(t, ErrUnknownTokenType.Is(err))
	require.Equal(t, `invalid token type filter (types are EOF, Number, Plus, Unknown): lexer does not support symbol "Minus"`, err.Error())
}

func TestGrammar(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, (&grammarCmd{}).Run(env.runContext))
	require.Equal(t, beispiel.Grammar, env.stdout.String())
}

func TestVerify(t *testing.T) {
	env := newTestEnv()
	cmd := &verifyCmd{Cases: filepath.Join("testdata", "cases.toml")}
	require.NoError(t, cmd.Run(env.runContext))
	require.Equal(t, 7, strings.Count(env.stdout.String(), "ok   "))
}

func writeCases(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cases.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVerifyFailures(t *testing.T) {
	env := newTestEnv()
	path := writeCases(t, `
[[case]]
input = "1+2+a"
valid = true

[[case]]
name = "wrong count"
input = "a+b"
errors = 1

[[case]]
input = "1"
valid = false
`)
	err := (&verifyCmd{Cases: path}).Run(env.runContext)
	require.True(t, ErrCasesFailed.Is(err))
	require.Equal(t, "3 of 3 cases failed", err.Error())
	require.Equal(t, `FAIL "1+2+a": expected valid input, got 1 syntax error(s)
FAIL wrong count: expected 1 syntax error(s), got 2
FAIL "1": expected syntax errors, got none
`, env.stdout.String())
}

func TestLoadCasesErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"NoCases", ``, "no cases"},
		{"NoExpectation", "[[case]]\ninput = \"1\"\n", `case 1 ("1") has neither valid nor errors`},
		{"Negative", "[[case]]\ninput = \"1\"\nerrors = -1\n", `case 1 ("1") has negative errors`},
		{"Contradiction", "[[case]]\ninput = \"1\"\nvalid = true\nerrors = 2\n", `case 1 ("1") has contradictory valid and errors`},
		{"UnknownKey", "[[case]]\ninput = \"1\"\nvalid = true\nexpect = 3\n", "unknown keys case.expect"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeCases(t, test.content)
			_, err := loadCases(path)
			require.Error(t, err)
			require.True(t, ErrInvalidCase.Is(err))
			require.Equal(t, path+": "+test.message, err.Error())
		})
	}
	_, err := loadCases(writeCases(t, "[[case]\n"))
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	w := &bytes.Buffer{}
	log, err := newLogger("info", "json", w)
	require.NoError(t, err)
	log.WithField("errors", 2).Info("Checked input")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Bytes(), &entry))
	require.Equal(t, "Checked input", entry["msg"])
	errs, ok := entry["errors"].(float64)
	require.True(t, ok, "errors field should be a JSON number")
	require.Equal(t, float64(2), errs)

	w.Reset()
	log, err = newLogger("warn", "text", w)
	require.NoError(t, err)
	log.Info("hidden")
	require.Equal(t, "", w.String())

	_, err = newLogger("loud", "text", w)
	require.Error(t, err)
}

func TestVersionDefault(t *testing.T) {
	require.Equal(t, "dev", version)
}
