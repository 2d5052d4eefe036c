package ir

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMarshal(t *testing.T) {
	y := Interior("a",
		Interior("b", FromValue("c")),
		FromValue("d"))
	d, err := json.Marshal(y)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"a","children":[` +
		`{"type":"b","children":[{"type":"terminal","value":"c"}]},` +
		`{"type":"terminal","value":"d"}]}`
	if string(d) != want {
		t.Errorf("got %s\nwant %s", d, want)
	}
}

func TestMarshalEmptyChildren(t *testing.T) {
	d, err := json.Marshal(Interior("a"))
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"type":"a","children":[]}` {
		t.Errorf("got %s", d)
	}
}

func TestUnmarshal(t *testing.T) {
	in := Interior("a",
		Interior("terminal"), // interior tag colliding with TerminalTag
		FromValue("v"))
	d, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	out := &Node{}
	if err := json.Unmarshal(d, out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalBad(t *testing.T) {
	for _, in := range []string{
		`{"type":"a"}`,
		`{"type":"terminal"}`,
	} {
		if err := json.Unmarshal([]byte(in), &Node{}); err == nil {
			t.Errorf("%s: expected error", in)
		}
	}
}
