// Package libdiff compares two ir trees.
//
// Comparison works on the canonical indented encoding of each tree, so
// a diff line corresponds to one node (or one run of sibling
// terminals).  Position annotations were discarded at parse time and
// never show up as noise in a diff.
package libdiff
