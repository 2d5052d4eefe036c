package libdiff

import (
	"bytes"
	"io"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/fatih/color"

	"github.com/sexp-format/go-sexp/encode"
	"github.com/sexp-format/go-sexp/ir"
)

// Trees computes a line-mode diff between the canonical encodings of
// from and to.  A nil tree diffs as empty text.
func Trees(from, to *ir.Node) []diffpatch.Diff {
	dmp := diffpatch.New()
	c1, c2, lines := dmp.DiffLinesToChars(canonical(from), canonical(to))
	diffs := dmp.DiffMain(c1, c2, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// Equal reports whether a diff contains no insertions or deletions.
func Equal(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return false
		}
	}
	return true
}

// Render writes diffs in a +/- line form, colorized when withColor is
// set.
func Render(w io.Writer, diffs []diffpatch.Diff, withColor bool) error {
	for i := range diffs {
		diff := &diffs[i]
		var prefix string
		var paint func(string, ...any) string
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
			if withColor {
				paint = color.RedString
			}
		case diffpatch.DiffInsert:
			prefix = "+ "
			if withColor {
				paint = color.GreenString
			}
		case diffpatch.DiffEqual:
			prefix = "  "
		}
		for _, ln := range splitLines(diff.Text) {
			out := prefix + ln + "\n"
			if paint != nil {
				out = paint("%s", out)
			}
			if _, err := w.Write([]byte(out)); err != nil {
				return err
			}
		}
	}
	return nil
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func canonical(y *ir.Node) string {
	if y == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(y, buf); err != nil {
		return ""
	}
	return buf.String()
}
