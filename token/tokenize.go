package token

// Tokenize appends the tokens of src to dst and returns the result.
// It is total: every input, including the empty one, produces a token
// sequence and there is no error case.  Delimiter bytes each form a
// single token, whitespace is discarded, and any other maximal run of
// bytes forms a bareword.
func Tokenize(dst []Token, src []byte) []Token {
	pd := &PosDoc{d: src}
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		switch {
		case c == '\n':
			pd.nl(i)
			i++
		case isSpace(c):
			i++
		case isDelim(c):
			dst = append(dst, Token{
				Type:  delimType(c),
				Pos:   pd.Pos(i),
				Bytes: src[i : i+1],
			})
			i++
		default:
			start := i
			for i < n && !isSpace(src[i]) && !isDelim(src[i]) {
				i++
			}
			dst = append(dst, Token{
				Type:  TBareword,
				Pos:   pd.Pos(start),
				Bytes: src[start:i],
			})
		}
	}
	return dst
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDelim(c byte) bool {
	switch c {
	case '(', ')', '[', ']', '-':
		return true
	}
	return false
}

func delimType(c byte) TokenType {
	switch c {
	case '(':
		return TLParen
	case ')':
		return TRParen
	case '[':
		return TLSquare
	case ']':
		return TRSquare
	case '-':
		return TDash
	}
	panic("not a delimiter")
}
