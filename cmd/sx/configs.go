package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/sexp-format/go-sexp/encode"
	"github.com/sexp-format/go-sexp/parse"
)

type MainConfig struct {
	Strict bool   `cli:"name=strict desc='reject unbalanced input instead of degrading to a partial tree'"`
	Wire   bool   `cli:"name=wire desc='output in compact single-line format'"`
	Color  bool   `cli:"name=color desc='encode with color'"`
	X      string `cli:"name=x aliases=extract desc='skip input lines preceding the first line opening this tag'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ParseStrict(cfg.Strict)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.Wire),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// input reads one document, applying preamble extraction when -x was
// given.
func (cfg *MainConfig) input(r io.Reader) ([]byte, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if cfg.xSet() {
		d = parse.Extract(d, cfg.X)
	}
	return d, nil
}

func (cfg *MainConfig) xSet() bool {
	if cfg.X != "" {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "x" {
			return opt.Value != nil
		}
	}
	return false
}

type ParseConfig struct {
	*MainConfig

	Indent int `cli:"name=indent desc='JSON indent width (0 for compact)' default=2"`

	Parse *cli.Command
}

type StatsConfig struct {
	*MainConfig

	N int `cli:"name=n desc='number of sample type tags to report' default=10"`

	Stats *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type LoadConfig struct {
	*MainConfig

	Load *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}
