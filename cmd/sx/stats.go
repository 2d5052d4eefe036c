package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/sexp-format/go-sexp/ir"
)

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachTree(cfg.MainConfig, args, func(file string, y *ir.Node) error {
		st := ir.Analyze(y)
		sample := st.SortedTypes()
		if cfg.N >= 0 && len(sample) > cfg.N {
			sample = sample[:cfg.N]
		}
		_, err := fmt.Fprintf(cc.Out, "nodes: %d\ntypes: %d\nsample: [%s]\n",
			st.Nodes, len(st.Types), strings.Join(sample, " "))
		return err
	})
}
