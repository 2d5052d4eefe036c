// Package ir represents parsed S-expression syntax trees.
//
// A tree is built once by the parse package and is read-only after
// construction.  Interior nodes carry a type tag and an ordered child
// list; terminal nodes carry a literal value.  Every node has exactly
// one parent, so the structure is a tree, never a graph.
//
// The package also provides structural analysis (Count, Inventory,
// Analyze) and the JSON record form of a tree via MarshalJSON and
// UnmarshalJSON.
//
// # Related Packages
//
//   - github.com/sexp-format/go-sexp/parse - Parse text to trees
//   - github.com/sexp-format/go-sexp/encode - Encode trees to text
package ir
