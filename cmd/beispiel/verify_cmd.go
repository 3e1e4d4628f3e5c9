package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/omg/beispiel"
)

type verifyCmd struct {
	Cases string `arg:"" type:"existingfile" help:"TOML file of cases."`
}

func (v *verifyCmd) Run(rc *runContext) error {
	cases, err := loadCases(v.Cases)
	if err != nil {
		return err
	}
	failed := 0
	for _, c := range cases {
		_, p, err := beispiel.ParseString(v.Cases, c.Input)
		if err != nil {
			return err
		}
		log := rc.Log.WithFields(logrus.Fields{"case": c.String(), "errors": p.SyntaxErrorCount()})
		if problem := c.check(p.SyntaxErrorCount()); problem != "" {
			failed++
			fmt.Fprintf(rc.Stdout, "FAIL %s: %s\n", c, problem)
			log.Info("Case failed")
			continue
		}
		fmt.Fprintf(rc.Stdout, "ok   %s\n", c)
		log.Debug("Case passed")
	}
	if failed > 0 {
		return ErrCasesFailed.New(failed, len(cases))
	}
	return nil
}
