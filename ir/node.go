package ir

// Node is a single tree node, polymorphic over Type.  Interior nodes
// use Tag and Children; terminal nodes use Value.  A node exclusively
// owns its children and nothing mutates a node once the parser has
// returned it.
type Node struct {
	Type     Type
	Tag      string
	Value    string
	Children []*Node
}

// Interior builds an interior node with the given type tag and
// children, in order.
func Interior(tag string, children ...*Node) *Node {
	return &Node{
		Type:     InteriorType,
		Tag:      tag,
		Children: children,
	}
}

// FromValue builds a terminal node holding v verbatim.
func FromValue(v string) *Node {
	return &Node{
		Type:  TerminalType,
		Value: v,
	}
}

// TypeTag is the tag a node contributes to the type inventory: the
// interior tag, or TerminalTag for leaves.
func (y *Node) TypeTag() string {
	if y.Type == TerminalType {
		return TerminalTag
	}
	return y.Tag
}

func (y *Node) Clone() *Node {
	res := &Node{
		Type:  y.Type,
		Tag:   y.Tag,
		Value: y.Value,
	}
	if y.Children != nil {
		res.Children = make([]*Node, len(y.Children))
		for i, c := range y.Children {
			res.Children[i] = c.Clone()
		}
	}
	return res
}

// Visit calls f on y pre- and post-order.  Returning false from the
// pre-order call skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Children {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
