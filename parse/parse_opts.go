package parse

type parseOpts struct {
	strict bool
}

type ParseOption func(*parseOpts)

// Strict rejects input whose paren delimiters are unbalanced instead
// of degrading to a partial tree.  The lenient default matches what
// existing consumers of tree-sitter dumps rely on.
func Strict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}

// ParseStrict sets strictness from a flag value.
func ParseStrict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}
