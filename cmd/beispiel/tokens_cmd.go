package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alecthomas/repr"
	"gopkg.in/yaml.v3"

	"github.com/omg/beispiel/lexer"
)

type tokensCmd struct {
	Format string   `short:"F" help:"Output format (${enum})." enum:"text,repr,json,yaml" default:"text"`
	Only   []string `short:"o" placeholder:"TYPE" help:"Only output tokens of these types."`
	Input  string   `arg:"" help:"Input to tokenize."`
}

type tokenRecord struct {
	Type   string `json:"type" yaml:"type"`
	Value  string `json:"value" yaml:"value"`
	Offset int    `json:"offset" yaml:"offset"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

func (c *tokensCmd) Run(rc *runContext) error {
	tokens, err := c.tokens()
	if err != nil {
		return err
	}
	switch c.Format {
	case "repr":
		repr.New(rc.Stdout, repr.Indent("  ")).Println(tokens)
		return nil

	case "json":
		enc := json.NewEncoder(rc.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records(tokens))

	case "yaml":
		enc := yaml.NewEncoder(rc.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(records(tokens)); err != nil {
			return err
		}
		return enc.Close()
	}
	for _, token := range tokens {
		fmt.Fprintf(rc.Stdout, "%-8s %-8q %s\n", token.Type, token.String(), token.Pos)
	}
	return nil
}

func (c *tokensCmd) tokens() ([]lexer.Token, error) {
	tokens := lexer.Tokenize("", c.Input).Tokens()
	if len(c.Only) == 0 {
		return tokens, nil
	}
	only, err := lexer.MakeSymbolTable(c.Only...)
	if err != nil {
		return nil, ErrUnknownTokenType.Wrap(err, strings.Join(lexer.SymbolNames(), ", "))
	}
	out := tokens[:0]
	for _, token := range tokens {
		if only[token.Type] {
			out = append(out, token)
		}
	}
	return out, nil
}

func records(tokens []lexer.Token) []tokenRecord {
	out := make([]tokenRecord, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, tokenRecord{
			Type:   token.Type.String(),
			Value:  token.Value,
			Offset: token.Pos.Offset,
			Line:   token.Pos.Line,
			Column: token.Pos.Column,
		})
	}
	return out
}
