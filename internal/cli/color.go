package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// colorEnabled decides whether to emit ANSI colors to out. In auto mode, colors are used only when out is a terminal and NO_COLOR is unset.
func colorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	return ok && f != nil && term.IsTerminal(int(f.Fd()))
}
