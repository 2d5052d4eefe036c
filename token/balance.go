package token

import (
	"fmt"
)

// Check validates paren balance over toks.  The tree builder itself
// tolerates imbalance and degrades to partial results, so callers
// wanting strict well-formedness run Check first.
func Check(toks []Token) error {
	depth := 0
	var lastOpen *Pos
	for i := range toks {
		tok := &toks[i]
		switch tok.Type {
		case TLParen:
			depth++
			lastOpen = tok.Pos
		case TRParen:
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: unopened ')' %s", ErrUnbalanced, tok.Pos)
			}
		}
	}
	if depth > 0 {
		return fmt.Errorf("%w: %d unclosed '(', last %s", ErrUnbalanced, depth, lastOpen)
	}
	return nil
}
