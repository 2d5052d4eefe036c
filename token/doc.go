// Package token splits S-expression text into tokens.
//
// The splitting rule is minimal: '(', ')', '[', ']' and '-' are
// single-character tokens, whitespace separates tokens and is
// discarded, and any other maximal run of non-delimiter characters is
// a bareword. There is no quoting or escaping, so tokenization is
// total: any input yields a (possibly empty) token sequence.
//
// # Related Packages
//
//   - github.com/sexp-format/go-sexp/parse - Build trees from tokens
//   - github.com/sexp-format/go-sexp/ir - Tree representation
package token
