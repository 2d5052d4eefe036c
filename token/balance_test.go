package token

import (
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	ok := []string{
		"",
		"(a)",
		"(a (b c) d)",
		"bare words only",
		"(a [1, 0] - [1, 5])",
		// bracket imbalance is tolerated, annotations are opaque
		"(a [1, 0)",
	}
	for _, in := range ok {
		if err := Check(Tokenize(nil, []byte(in))); err != nil {
			t.Errorf("%q: unexpected error %v", in, err)
		}
	}
	bad := []string{
		"(a",
		"(a))",
		")",
		"(a (b)",
	}
	for _, in := range bad {
		err := Check(Tokenize(nil, []byte(in)))
		if err == nil {
			t.Errorf("%q: expected error", in)
			continue
		}
		if !errors.Is(err, ErrUnbalanced) {
			t.Errorf("%q: error %v does not wrap ErrUnbalanced", in, err)
		}
	}
}
