// Package main is a command-line front end for the beispiel recognizer.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

var version = "dev"

var cli struct {
	LogLevel  string           `help:"Log level (${enum})." enum:"debug,info,warn,error" default:"warn" env:"BEISPIEL_LOG_LEVEL"`
	LogFormat string           `help:"Log format (${enum})." enum:"text,json" default:"text" env:"BEISPIEL_LOG_FORMAT"`
	Version   kong.VersionFlag `help:"Show version and exit."`

	Check   checkCmd   `cmd:"" help:"Check inputs for syntax errors."`
	Tokens  tokensCmd  `cmd:"" help:"Dump the token stream of an input."`
	Grammar grammarCmd `cmd:"" help:"Print and verify the grammar."`
	Verify  verifyCmd  `cmd:"" help:"Run a TOML file of input/expectation cases."`
}

// runContext is bound into every command's Run method.
type runContext struct {
	Stdout io.Writer
	Stderr io.Writer
	Log    logrus.FieldLogger
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("beispiel"),
		kong.Description(`Recognise sums of integers such as "1+2".`),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)
	log, err := newLogger(cli.LogLevel, cli.LogFormat, os.Stderr)
	kctx.FatalIfErrorf(err)
	err = kctx.Run(&runContext{Stdout: os.Stdout, Stderr: os.Stderr, Log: log})
	kctx.FatalIfErrorf(err)
}

func newLogger(level, format string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	switch format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return log, nil
}
