package parse

import (
	"errors"

	"github.com/sexp-format/go-sexp/token"
)

var (
	ErrParse      = errors.New("parse error")
	ErrUnbalanced = token.ErrUnbalanced
)
