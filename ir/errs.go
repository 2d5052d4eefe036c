package ir

import "errors"

var ErrRecord = errors.New("malformed record")
