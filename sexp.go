// Package sexp ties the go-sexp packages together behind one-call
// entry points: text in, tree plus statistics out.  Programs needing
// options or intermediate results use the parse, ir, encode, libdiff
// and query packages directly.
package sexp

import (
	"github.com/sexp-format/go-sexp/ir"
	"github.com/sexp-format/go-sexp/libdiff"
	"github.com/sexp-format/go-sexp/parse"
)

// Parse builds a tree from S-expression text, best-effort.
func Parse(d []byte) (*ir.Node, error) {
	return parse.Parse(d)
}

// Analyze parses d and returns the tree with its structural
// statistics.
func Analyze(d []byte) (*ir.Node, *ir.Stats, error) {
	y, err := parse.Parse(d)
	if err != nil {
		return nil, nil, err
	}
	return y, ir.Analyze(y), nil
}

// Equal reports whether two trees have identical structure.
func Equal(a, b *ir.Node) bool {
	return libdiff.Equal(libdiff.Trees(a, b))
}
