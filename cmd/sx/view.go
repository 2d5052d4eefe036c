package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sexp-format/go-sexp/encode"
	"github.com/sexp-format/go-sexp/ir"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachTree(cfg.MainConfig, args, func(file string, y *ir.Node) error {
		if y == nil {
			return fmt.Errorf("%s: no tree parsed", file)
		}
		return encode.Encode(y, cc.Out, opts...)
	})
}
