package encode

type EncodeOption func(*EncState)

// EncodeWire renders the whole tree on a single line.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
