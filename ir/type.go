package ir

import "fmt"

type Type int

const (
	InteriorType Type = iota
	TerminalType
)

// TerminalTag is the fixed type tag terminal nodes contribute to the
// type inventory and to the JSON record form.
const TerminalTag = "terminal"

func (t Type) String() string {
	s, ok := map[Type]string{
		InteriorType: "Interior",
		TerminalType: "Terminal",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Interior": InteriorType,
		"Terminal": TerminalType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{InteriorType, TerminalType}
}

func (t Type) IsLeaf() bool {
	return t == TerminalType
}
