package diff

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ANSI escapes used by RenderColor.
const (
	ansiReset = "\x1b[0m"
	ansiGreen = "\x1b[92m"
	ansiRed   = "\x1b[91m"
)

// RenderColor returns the changeset as one text: Same entries verbatim, Add entries in bright green and Rem entries in bright red. Removals stay inline, so the result
// reads as the edited text with the removed parts shown in place.
func (c Changeset) RenderColor() string {
	var b strings.Builder
	for _, d := range c {
		switch d.Op {
		case OpSame:
			b.WriteString(d.Text)
		case OpAdd:
			b.WriteString(ansiGreen)
			b.WriteString(d.Text)
			b.WriteString(ansiReset)
		case OpRem:
			b.WriteString(ansiRed)
			b.WriteString(d.Text)
			b.WriteString(ansiReset)
		}
	}
	return b.String()
}

// RenderPlain is like RenderColor, but marks removals as "[-text-]" and additions as "{+text+}" (the markers of `git diff --word-diff=plain`).
func (c Changeset) RenderPlain() string {
	var b strings.Builder
	for _, d := range c {
		switch d.Op {
		case OpSame:
			b.WriteString(d.Text)
		case OpAdd:
			b.WriteString("{+")
			b.WriteString(d.Text)
			b.WriteString("+}")
		case OpRem:
			b.WriteString("[-")
			b.WriteString(d.Text)
			b.WriteString("-]")
		}
	}
	return b.String()
}

// FprintDiff diffs orig to edit and writes the colorized changeset to w, followed by a newline.
func FprintDiff(w io.Writer, orig, edit, split string) error {
	_, changeset := Diff(orig, edit, split)
	_, err := fmt.Fprintln(w, changeset.RenderColor())
	return err
}

// PrintDiff prints a colorful visual representation of the diff of orig to edit to stdout. It is a convenience for quick results; use Diff and build your own
// output otherwise.
func PrintDiff(orig, edit, split string) {
	_ = FprintDiff(os.Stdout, orig, edit, split)
}
