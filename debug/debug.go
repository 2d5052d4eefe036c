package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	Query  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("SX_DEBUG_TOKENS")
	d.Parse = boolEnv("SX_DEBUG_PARSE")
	d.Query = boolEnv("SX_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Query() bool {
	return d.Query
}
