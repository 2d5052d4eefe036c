package main

import (
	"fmt"
	"os"

	"github.com/sexp-format/go-sexp/ir"
	"github.com/sexp-format/go-sexp/parse"
)

// getTree parses one S-expression dump from a file, or from stdin
// when file is "-".
func getTree(cfg *MainConfig, file string) (*ir.Node, error) {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	d, err := cfg.input(f)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	return parse.Parse(d, cfg.parseOpts()...)
}

// eachTree runs f over the trees of the given files, or of stdin
// when files is empty.
func eachTree(cfg *MainConfig, files []string, f func(file string, y *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		y, err := getTree(cfg, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if err := f(file, y); err != nil {
			return err
		}
	}
	return nil
}
