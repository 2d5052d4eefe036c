// Package encode renders ir trees back to S-expression text.
//
// # Usage
//
//	node := ir.Interior("call", ir.FromValue("print"))
//	err := encode.Encode(node, os.Stdout)
//
//	// Compact single-line form
//	err := encode.Encode(node, w, encode.EncodeWire(true))
//
// The default layout is indented: a node whose children are all
// terminals stays on one line, anything nested breaks across lines.
//
// # Related Packages
//
//   - github.com/sexp-format/go-sexp/ir - Tree representation
//   - github.com/sexp-format/go-sexp/parse - Parse text to trees
package encode
