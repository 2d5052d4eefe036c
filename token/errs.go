package token

import "errors"

var ErrUnbalanced = errors.New("unbalanced document")
