package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/sexp-format/go-sexp/ir"
)

func parseCmd(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachTree(cfg.MainConfig, args, func(file string, y *ir.Node) error {
		if y == nil {
			return fmt.Errorf("%s: no tree parsed", file)
		}
		var d []byte
		var err error
		if cfg.Indent > 0 && !cfg.Wire {
			d, err = json.MarshalIndent(y, "", strings.Repeat(" ", cfg.Indent))
		} else {
			d, err = json.Marshal(y)
		}
		if err != nil {
			return fmt.Errorf("internal error: %w", err)
		}
		if _, err := cc.Out.Write(append(d, '\n')); err != nil {
			return err
		}
		return nil
	})
}
