package token

import (
	"testing"
)

type tokenizeTest struct {
	in    string
	types []TokenType
	texts []string
}

func TestTokenize(t *testing.T) {
	tts := []tokenizeTest{
		{
			in:    "",
			types: nil,
		},
		{
			in:    "   \n\t\n",
			types: nil,
		},
		{
			in:    "(a)",
			types: []TokenType{TLParen, TBareword, TRParen},
			texts: []string{"(", "a", ")"},
		},
		{
			in:    "(a b c)",
			types: []TokenType{TLParen, TBareword, TBareword, TBareword, TRParen},
			texts: []string{"(", "a", "b", "c", ")"},
		},
		{
			in: "(a [1, 0] - [1, 5] b)",
			types: []TokenType{
				TLParen, TBareword,
				TLSquare, TBareword, TBareword, TRSquare,
				TDash,
				TLSquare, TBareword, TBareword, TRSquare,
				TBareword, TRParen,
			},
		},
		{
			// delimiters split barewords with no surrounding space
			in:    "a-b",
			types: []TokenType{TBareword, TDash, TBareword},
			texts: []string{"a", "-", "b"},
		},
		{
			in:    "(source_file\n  (decl))",
			types: []TokenType{TLParen, TBareword, TLParen, TBareword, TRParen, TRParen},
		},
		{
			// no escaping: quotes are ordinary bareword bytes
			in:    `("x")`,
			types: []TokenType{TLParen, TBareword, TRParen},
			texts: []string{"(", `"x"`, ")"},
		},
		{
			// imbalance is not the tokenizer's concern
			in:    ")))(",
			types: []TokenType{TRParen, TRParen, TRParen, TLParen},
		},
	}
	for _, tt := range tts {
		toks := Tokenize(nil, []byte(tt.in))
		if len(toks) != len(tt.types) {
			t.Errorf("%q: got %d tokens, want %d", tt.in, len(toks), len(tt.types))
			continue
		}
		for i := range toks {
			if toks[i].Type != tt.types[i] {
				t.Errorf("%q: token %d type %s, want %s", tt.in, i, toks[i].Type, tt.types[i])
			}
			if tt.texts != nil && toks[i].String() != tt.texts[i] {
				t.Errorf("%q: token %d text %q, want %q", tt.in, i, toks[i].String(), tt.texts[i])
			}
		}
	}
}

func TestTokenizePositions(t *testing.T) {
	toks := Tokenize(nil, []byte("(a\n  (b c))"))
	if len(toks) != 7 {
		t.Fatalf("got %d tokens", len(toks))
	}
	// "(b" opens on the second line, column 2
	line, col := toks[2].Pos.LineCol()
	if line != 1 || col != 2 {
		t.Errorf("got line=%d col=%d, want line=1 col=2", line, col)
	}
	if toks[0].Pos.Line() != 0 || toks[0].Pos.Col() != 0 {
		t.Errorf("first token not at origin: %s", toks[0].Pos)
	}
}

func TestTokenizeAppends(t *testing.T) {
	dst := Tokenize(nil, []byte("(a)"))
	dst = Tokenize(dst, []byte("(b)"))
	if len(dst) != 6 {
		t.Fatalf("got %d tokens, want 6", len(dst))
	}
	if dst[4].String() != "b" {
		t.Errorf("appended token text %q", dst[4].String())
	}
}
