package token

type TokenType int

const (
	TLParen TokenType = iota
	TRParen
	TLSquare
	TRSquare
	TDash
	TBareword
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLParen:   "TLParen",
		TRParen:   "TRParen",
		TLSquare:  "TLSquare",
		TRSquare:  "TRSquare",
		TDash:     "TDash",
		TBareword: "TBareword",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) String() string {
	return string(t.Bytes)
}

func (t *Token) Info() string {
	return t.Type.String() + " " + t.Pos.String()
}
