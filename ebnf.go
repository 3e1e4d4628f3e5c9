package beispiel

import (
	"strings"

	"golang.org/x/exp/ebnf"
)

// Grammar is the EBNF of the language accepted by Parser, in golang.org/x/exp/ebnf syntax.
//
// Upper-case productions are parser rules or lexer tokens. Lower-case productions are lexical.
const Grammar = `Start  = Number { "+" Number } .
Number = digit { digit } .
digit  = "0" … "9" .
`

// GrammarStart is the name of the start production in Grammar.
const GrammarStart = "Start"

// VerifyGrammar parses Grammar and checks it is complete and reachable from GrammarStart.
func VerifyGrammar() error {
	grammar, err := ebnf.Parse("beispiel.ebnf", strings.NewReader(Grammar))
	if err != nil {
		return err
	}
	return ebnf.Verify(grammar, GrammarStart)
}

// String returns the EBNF for the grammar.
func (p *Parser) String() string {
	return Grammar
}
