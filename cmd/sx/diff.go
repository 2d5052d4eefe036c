package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/sexp-format/go-sexp/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getTree(cfg.MainConfig, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getTree(cfg.MainConfig, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	diffs := libdiff.Trees(y1, y2)
	if libdiff.Equal(diffs) {
		return nil
	}
	withColor := cfg.Color
	if !withColor {
		if f, ok := cc.Out.(*os.File); ok {
			withColor = isatty.IsTerminal(f.Fd())
		}
	}
	if err := libdiff.Render(cc.Out, diffs, withColor); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
