package render

import (
	"io"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	insertColor = color.New(color.FgGreen)
	deleteColor = color.New(color.FgRed)
	equalColor  = color.New(color.FgHiBlack)
)

// WriteCharDiff writes a character level diff turning expected into actual.
// Inserted text is green, removed text red and unchanged text grey.
func WriteCharDiff(w io.Writer, expected, actual string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			insertColor.Fprint(w, d.Text)
		case diffmatchpatch.DiffDelete:
			deleteColor.Fprint(w, d.Text)
		default:
			equalColor.Fprint(w, d.Text)
		}
	}
	io.WriteString(w, "\n")
}
