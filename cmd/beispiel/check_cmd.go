package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/omg/beispiel"
	"github.com/omg/beispiel/lexer"
)

type checkCmd struct {
	Files     bool     `short:"f" help:"Treat arguments as files and check each line as a separate input."`
	Tree      bool     `short:"t" help:"Print the parse tree of each input."`
	Report    string   `help:"Where to report syntax errors (${enum})." enum:"console,log,none" default:"console"`
	Resync    bool     `help:"Recover by skipping to the next '+' rather than a single token."`
	MaxErrors int      `help:"Stop matching after this many errors per input (0 for no limit)." default:"0"`
	Inputs    []string `arg:"" help:"Inputs to check, or files with --files."`
}

type source struct {
	label string
	start lexer.Position
	input string
}

func (c *checkCmd) Help() string {
	return `
Each input must be a sum of integers such as "1+2" or "12+34+5". Whitespace is not
allowed. The command exits non-zero if any input has syntax errors.
`
}

func (c *checkCmd) Run(rc *runContext) error {
	sources, err := c.sources()
	if err != nil {
		return err
	}
	options := []beispiel.Option{beispiel.MaxErrors(c.MaxErrors)}
	if c.Resync {
		options = append(options, beispiel.Recover(beispiel.SkipUntil()))
	}
	switch c.Report {
	case "console":
		options = append(options, beispiel.Listener(beispiel.ConsoleListener(rc.Stderr)))
	case "log":
		options = append(options, beispiel.Listener(beispiel.LogListener(rc.Log)))
	}
	invalid := 0
	for _, src := range sources {
		p, err := beispiel.New(lexer.TokenizeAt(src.start, src.input), options...)
		if err != nil {
			return err
		}
		tree := p.Start()
		count := p.SyntaxErrorCount()
		fmt.Fprintf(rc.Stdout, "%s: %d syntax error(s)\n", src.label, count)
		if c.Tree {
			fmt.Fprintf(rc.Stdout, "  %s\n", tree)
		}
		rc.Log.WithFields(logrus.Fields{"input": src.label, "errors": count}).Debug("Checked input")
		if count > 0 {
			invalid++
		}
	}
	if invalid > 0 {
		return ErrInvalidInput.New(invalid, len(sources))
	}
	return nil
}

func (c *checkCmd) sources() ([]source, error) {
	if !c.Files {
		out := make([]source, 0, len(c.Inputs))
		for _, input := range c.Inputs {
			out = append(out, source{
				label: strconv.Quote(input),
				start: lexer.Position{Line: 1, Column: 1},
				input: input,
			})
		}
		return out, nil
	}
	var out []source
	for _, path := range c.Inputs {
		lines, err := readLines(path)
		if err != nil {
			return nil, err
		}
		for _, line := range lines {
			out = append(out, source{
				label: fmt.Sprintf("%s:%d", path, line.start.Line),
				start: line.start,
				input: line.text,
			})
		}
	}
	return out, nil
}

type fileLine struct {
	start lexer.Position
	text  string
}

// readLines returns the lines of a file without their terminators, each with the position of
// its first byte in the file.
func readLines(path string) ([]fileLine, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []fileLine
	pos := lexer.Position{Filename: path, Line: 1, Column: 1}
	for _, raw := range strings.SplitAfter(string(b), "\n") {
		if raw == "" {
			break
		}
		text := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		lines = append(lines, fileLine{start: pos, text: text})
		pos = pos.Advance(raw)
	}
	return lines, nil
}
