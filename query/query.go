// Package query selects nodes from an ir tree with expr expressions.
//
// An expression is evaluated once per node against the environment
//
//	type     "Interior" or "Terminal"
//	tag      the node's type tag ("terminal" for leaves)
//	value    terminal literal, "" for interior nodes
//	depth    0 at the root
//	children number of children
//
// For example `tag == "identifier"` or `type == "Terminal" && depth > 3`.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/sexp-format/go-sexp/debug"
	"github.com/sexp-format/go-sexp/ir"
)

type Query struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.Env(nodeEnv(nil, 0)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prg: prg}, nil
}

// Select returns every node in the tree for which the query holds, in
// pre-order.
func (q *Query) Select(root *ir.Node) ([]*ir.Node, error) {
	if root == nil {
		return nil, nil
	}
	var res []*ir.Node
	if err := q.selectAt(root, 0, &res); err != nil {
		return nil, err
	}
	if debug.Query() {
		debug.Logf("query %q: %d of %d nodes\n", q.src, len(res), ir.Count(root))
	}
	return res, nil
}

func (q *Query) selectAt(y *ir.Node, depth int, res *[]*ir.Node) error {
	out, err := expr.Run(q.prg, nodeEnv(y, depth))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
	if out.(bool) {
		*res = append(*res, y)
	}
	for _, c := range y.Children {
		if err := q.selectAt(c, depth+1, res); err != nil {
			return err
		}
	}
	return nil
}

func nodeEnv(y *ir.Node, depth int) map[string]any {
	if y == nil {
		y = &ir.Node{}
	}
	return map[string]any{
		"type":     y.Type.String(),
		"tag":      y.TypeTag(),
		"value":    y.Value,
		"depth":    depth,
		"children": len(y.Children),
	}
}
