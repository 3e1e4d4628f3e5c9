package main

import (
	"fmt"

	"github.com/omg/beispiel"
)

type grammarCmd struct{}

func (g *grammarCmd) Run(rc *runContext) error {
	if err := beispiel.VerifyGrammar(); err != nil {
		return err
	}
	fmt.Fprint(rc.Stdout, beispiel.Grammar)
	return nil
}
