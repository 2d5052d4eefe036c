package query

import (
	"errors"
	"testing"

	"github.com/sexp-format/go-sexp/ir"
)

func tree() *ir.Node {
	return ir.Interior("source_file",
		ir.Interior("decl",
			ir.Interior("identifier", ir.FromValue("main")),
			ir.Interior("body")),
		ir.Interior("decl",
			ir.Interior("identifier", ir.FromValue("helper"))))
}

func TestSelectByTag(t *testing.T) {
	q, err := Compile(`tag == "decl"`)
	if err != nil {
		t.Fatal(err)
	}
	res, err := q.Select(tree())
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 {
		t.Fatalf("got %d nodes, want 2", len(res))
	}
}

func TestSelectTerminals(t *testing.T) {
	q, err := Compile(`type == "Terminal"`)
	if err != nil {
		t.Fatal(err)
	}
	res, err := q.Select(tree())
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 {
		t.Fatalf("got %d nodes, want 2", len(res))
	}
	if res[0].Value != "main" || res[1].Value != "helper" {
		t.Errorf("wrong selection order: %v, %v", res[0].Value, res[1].Value)
	}
}

func TestSelectDepth(t *testing.T) {
	q, err := Compile(`depth == 0`)
	if err != nil {
		t.Fatal(err)
	}
	res, err := q.Select(tree())
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || res[0].Tag != "source_file" {
		t.Fatalf("got %v", res)
	}
}

func TestSelectChildren(t *testing.T) {
	q, err := Compile(`children > 1`)
	if err != nil {
		t.Fatal(err)
	}
	res, err := q.Select(tree())
	if err != nil {
		t.Fatal(err)
	}
	// source_file and the first decl
	if len(res) != 2 {
		t.Fatalf("got %d nodes, want 2", len(res))
	}
}

func TestCompileErr(t *testing.T) {
	_, err := Compile(`nosuchvar == 3`)
	if err == nil {
		t.Fatal("expected compile error")
	}
	if !errors.Is(err, ErrQuery) {
		t.Errorf("error %v does not wrap ErrQuery", err)
	}
	// non-boolean expressions are rejected at compile time
	if _, err := Compile(`depth + 1`); err == nil {
		t.Error("expected compile error for non-bool expression")
	}
}

func TestSelectNil(t *testing.T) {
	q, err := Compile(`true`)
	if err != nil {
		t.Fatal(err)
	}
	res, err := q.Select(nil)
	if err != nil || res != nil {
		t.Errorf("got %v, %v", res, err)
	}
}
