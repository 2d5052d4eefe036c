package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/sexp-format/go-sexp/ir"
)

type EncState struct {
	depth, indent int
	wire          bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Type == ir.TerminalType {
		return writeValue(w, node.Value, es)
	}
	if err := writeSep(w, "(", es); err != nil {
		return err
	}
	if err := writeTag(w, node.Tag, es); err != nil {
		return err
	}
	nested := false
	for _, c := range node.Children {
		if c.Type == ir.InteriorType {
			nested = true
			break
		}
	}
	es.depth++
	for _, c := range node.Children {
		if !es.wire && nested {
			if err := writeNL(w, es); err != nil {
				return err
			}
		} else {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := encode(c, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeSep(w, ")", es)
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(strings.Repeat(" ", es.indent), es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeTag(w io.Writer, tag string, es *EncState) error {
	if es.Color == nil {
		return writeString(w, tag)
	}
	return writeString(w, es.Color(ir.InteriorType, TagColor, tag))
}

func writeValue(w io.Writer, v string, es *EncState) error {
	if es.Color == nil {
		return writeString(w, v)
	}
	return writeString(w, es.Color(ir.TerminalType, ValueColor, v))
}

func writeSep(w io.Writer, s string, es *EncState) error {
	if es.Color == nil {
		return writeString(w, s)
	}
	return writeString(w, es.Color(ir.InteriorType, SepColor, s))
}
