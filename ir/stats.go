package ir

import (
	"maps"
	"slices"
)

// Count is the total number of nodes in the tree rooted at y.
// Terminals count 1; a nil tree counts 0.
func Count(y *Node) int {
	if y == nil {
		return 0
	}
	n := 1
	for _, c := range y.Children {
		n += Count(c)
	}
	return n
}

// Inventory is the set of distinct type tags in the tree rooted at y,
// with terminal nodes contributing TerminalTag.
func Inventory(y *Node) map[string]struct{} {
	res := map[string]struct{}{}
	inventory(y, res)
	return res
}

func inventory(y *Node, res map[string]struct{}) {
	if y == nil {
		return
	}
	res[y.TypeTag()] = struct{}{}
	for _, c := range y.Children {
		inventory(c, res)
	}
}

// Stats are the structural statistics of one tree.
type Stats struct {
	Nodes int
	Types map[string]struct{}
}

func Analyze(y *Node) *Stats {
	return &Stats{
		Nodes: Count(y),
		Types: Inventory(y),
	}
}

// SortedTypes returns the inventory in a stable order.  The set itself
// is unordered, so anything rendering it textually goes through here.
func (s *Stats) SortedTypes() []string {
	return slices.Sorted(maps.Keys(s.Types))
}
