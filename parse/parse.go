package parse

import (
	"fmt"

	"github.com/sexp-format/go-sexp/debug"
	"github.com/sexp-format/go-sexp/ir"
	"github.com/sexp-format/go-sexp/token"
)

// Parse builds a tree from S-expression text.  The default posture is
// best-effort: token exhaustion and unmatched parens yield a partial
// or nil tree, never an error.  With Strict(), delimiter imbalance is
// reported up front instead.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks := token.Tokenize(nil, d)
	if debug.Tokens() {
		for i := range toks {
			debug.Logf("%3d %s %q\n", i, toks[i].Type, toks[i].String())
		}
	}
	if pOpts.strict {
		if err := token.Check(toks); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
	}
	pi := 0
	res := parseNode(toks, &pi)
	if debug.Parse() {
		debug.Logf("parse: %d tokens, %d nodes\n", len(toks), ir.Count(res))
	}
	return res, nil
}

// parseNode consumes one node starting at *pi, leaving *pi at the
// next unconsumed token.  A nil result with *pi unchanged means "no
// node here", which terminates the enclosing child loop.
func parseNode(toks []token.Token, pi *int) *ir.Node {
	if *pi >= len(toks) {
		return nil
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TLParen:
		*pi++
		if *pi >= len(toks) {
			// stream exhausted before a tag; recoverable
			return nil
		}
		// the next token is the tag, whatever it is
		y := ir.Interior(toks[*pi].String())
		*pi++
		skipAnnotation(toks, pi)
		for *pi < len(toks) && toks[*pi].Type != token.TRParen {
			if child := parseNode(toks, pi); child != nil {
				y.Children = append(y.Children, child)
			}
		}
		if *pi < len(toks) {
			*pi++ // the closing ')'
		}
		return y
	case token.TRParen:
		return nil
	default:
		*pi++
		return ir.FromValue(t.String())
	}
}

// skipAnnotation discards a "[row, col]" group following a tag and,
// when a dash follows, a second group, matching the range convention
// "[row, col] - [row, col]" of tree-sitter output.  The contents are
// opaque: the first close-bracket ends a group, nesting is not a
// concern.  Nothing here reaches the tree.
func skipAnnotation(toks []token.Token, pi *int) {
	if *pi >= len(toks) || toks[*pi].Type != token.TLSquare {
		return
	}
	skipBracketGroup(toks, pi)
	if *pi < len(toks) && toks[*pi].Type == token.TDash {
		*pi++
		if *pi < len(toks) && toks[*pi].Type == token.TLSquare {
			skipBracketGroup(toks, pi)
		}
	}
}

func skipBracketGroup(toks []token.Token, pi *int) {
	for *pi < len(toks) && toks[*pi].Type != token.TRSquare {
		*pi++
	}
	if *pi < len(toks) {
		*pi++ // the closing ']'
	}
}
