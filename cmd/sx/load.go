package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/sexp-format/go-sexp/encode"
	"github.com/sexp-format/go-sexp/ir"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range args {
		if err := loadFile(cc, file, opts); err != nil {
			return err
		}
	}
	return nil
}

func loadFile(cc *cli.Context, file string, opts []encode.EncodeOption) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	d, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", file, err)
	}
	y := &ir.Node{}
	if err := json.Unmarshal(d, y); err != nil {
		return fmt.Errorf("error decoding record %s: %w", file, err)
	}
	return encode.Encode(y, cc.Out, opts...)
}
