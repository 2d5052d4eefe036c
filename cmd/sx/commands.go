package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "sx").
		WithSynopsis("sx [opts] command [opts]").
		WithDescription("sx is a tool for working with S-expression syntax trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sxMain(cfg, cc, args)
		}).
		WithSubs(
			ParseCommand(cfg),
			StatsCommand(cfg),
			ViewCommand(cfg),
			LoadCommand(cfg),
			DiffCommand(cfg),
			ListCommand(cfg))
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Parse, "parse").
		WithAliases("p", "pa").
		WithSynopsis("parse [opts] [files]").
		WithDescription("parse S-expression dumps and emit the JSON record form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return parseCmd(cfg, cc, args)
		})
}

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Stats, "stats").
		WithAliases("s", "st").
		WithSynopsis("stats [opts] [files]").
		WithDescription("report node count and type inventory of parsed trees").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return stats(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("reformat S-expression trees, with color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func LoadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LoadConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Load, "load").
		WithSynopsis("load [record-files]").
		WithDescription("load JSON record files and render them as S-expressions").
		WithRun(func(cc *cli.Context, args []string) error {
			return load(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff the trees of two S-expression dumps").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l").
		WithSynopsis("list <expr> [files]").
		WithDescription(listDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

const listDescription = `list prints every node matching an expression, one per line in
compact form.

The expression is evaluated per node with the environment

  type      "Interior" or "Terminal"
  tag       the node's type tag ("terminal" for leaves)
  value     terminal literal, "" for interior nodes
  depth     0 at the root
  children  number of children

Examples

  sx list 'tag == "identifier"' dump.sexp
  sx list 'type == "Terminal" && depth > 3' dump.sexp
`
