package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sexp-format/go-sexp/encode"
	"github.com/sexp-format/go-sexp/ir"
	"github.com/sexp-format/go-sexp/query"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: list requires an expression argument", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	args = args[1:]
	opts := append(cfg.encOpts(cc.Out), encode.EncodeWire(true))
	return eachTree(cfg.MainConfig, args, func(file string, y *ir.Node) error {
		res, err := q.Select(y)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
		for _, node := range res {
			if err := encode.Encode(node, cc.Out, opts...); err != nil {
				return err
			}
		}
		return nil
	})
}
