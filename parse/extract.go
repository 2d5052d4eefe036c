package parse

import (
	"bytes"
)

// Extract returns the suffix of d starting at the first line that
// opens a node with the given tag, dropping any preamble an external
// parser printed before its S-expression dump (version warnings and
// the like).  An empty tag matches the first line starting with '('.
// When no such line exists, d is returned unchanged.
func Extract(d []byte, tag string) []byte {
	open := []byte("(" + tag)
	off := 0
	for off <= len(d) {
		line := d[off:]
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
		}
		if match(line, open, tag == "") {
			return d[off:]
		}
		i := bytes.IndexByte(d[off:], '\n')
		if i < 0 {
			break
		}
		off += i + 1
	}
	return d
}

func match(line, open []byte, anyTag bool) bool {
	if !bytes.HasPrefix(line, open) {
		return false
	}
	if anyTag {
		return true
	}
	// the tag must end at a delimiter or whitespace, so that
	// "(source_file" does not match tag "source"
	rest := line[len(open):]
	if len(rest) == 0 {
		return true
	}
	switch rest[0] {
	case ' ', '\t', '\r', '(', ')', '[', ']', '-':
		return true
	}
	return false
}
