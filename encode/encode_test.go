package encode

import (
	"bytes"
	"testing"

	"github.com/sexp-format/go-sexp/ir"
)

func TestEncodeFlat(t *testing.T) {
	y := ir.Interior("a", ir.FromValue("b"), ir.FromValue("c"))
	if got := MustString(y); got != "(a b c)" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeNested(t *testing.T) {
	y := ir.Interior("a",
		ir.Interior("b", ir.FromValue("c")),
		ir.FromValue("d"))
	want := "(a\n  (b c)\n  d)"
	if got := MustString(y); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeWire(t *testing.T) {
	y := ir.Interior("a",
		ir.Interior("b", ir.FromValue("c")),
		ir.FromValue("d"))
	buf := bytes.NewBuffer(nil)
	if err := Encode(y, buf, EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "(a (b c) d)\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeIndent(t *testing.T) {
	y := ir.Interior("a", ir.Interior("b"))
	buf := bytes.NewBuffer(nil)
	if err := Encode(y, buf, Indent(4)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "(a\n    (b))\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeNil(t *testing.T) {
	if err := Encode(nil, bytes.NewBuffer(nil)); err == nil {
		t.Error("expected error for nil node")
	}
}

func TestEncodeColored(t *testing.T) {
	y := ir.Interior("a", ir.FromValue("b"))
	buf := bytes.NewBuffer(nil)
	colors := NewColors()
	if err := Encode(y, buf, EncodeColors(colors)); err != nil {
		t.Fatal(err)
	}
	// colored output still contains the raw text
	if !bytes.Contains(buf.Bytes(), []byte("a")) || !bytes.Contains(buf.Bytes(), []byte("b")) {
		t.Errorf("got %q", buf.String())
	}
}
