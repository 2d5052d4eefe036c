// Package parse builds ir trees from S-expression text.
//
// # Usage
//
//	// Parse S-expression text
//	node, err := parse.Parse([]byte(`(call (identifier print) (string hi))`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse with strict balance checking
//	node, err := parse.Parse(data, parse.Strict())
//
// By default the parser never fails: malformed input degrades to a
// partial or nil tree.  Position annotations of the form
// "[row, col] - [row, col]" following a node's tag are consumed and
// discarded.
//
// # Related Packages
//
//   - github.com/sexp-format/go-sexp/ir - Tree representation
//   - github.com/sexp-format/go-sexp/encode - Encode trees to text
//   - github.com/sexp-format/go-sexp/token - Tokenization
package parse
