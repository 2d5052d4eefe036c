package ir

import (
	"encoding/json"
	"fmt"
)

// The JSON record form of a tree:
//
//	interior: {"type": <tag>, "children": [<record>, ...]}
//	terminal: {"type": "terminal", "value": <string>}
//
// The children key is always present on interior records, even when
// empty, which is what disambiguates an interior node whose tag
// happens to be "terminal".

func (y *Node) MarshalJSON() ([]byte, error) {
	switch y.Type {
	case TerminalType:
		type C struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		}
		return json.Marshal(C{Type: TerminalTag, Value: y.Value})
	default:
		type C struct {
			Type     string  `json:"type"`
			Children []*Node `json:"children"`
		}
		children := y.Children
		if children == nil {
			children = []*Node{}
		}
		return json.Marshal(C{Type: y.Tag, Children: children})
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		Type     string   `json:"type"`
		Value    *string  `json:"value"`
		Children *[]*Node `json:"children"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	if tmp.Children != nil {
		y.Type = InteriorType
		y.Tag = tmp.Type
		y.Children = *tmp.Children
		return nil
	}
	if tmp.Type != TerminalTag {
		return fmt.Errorf("%w: record type %q has no children", ErrRecord, tmp.Type)
	}
	if tmp.Value == nil {
		return fmt.Errorf("%w: terminal record has no value", ErrRecord)
	}
	y.Type = TerminalType
	y.Value = *tmp.Value
	return nil
}
