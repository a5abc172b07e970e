// Package cli implements the textdiff command line: it loads configuration, parses flags, diffs files or strings, and renders the changeset.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	qcli "github.com/codalotl/textdiff/internal/q/cli"
)

// Version is the textdiff version. It is a var so builds can override it with -ldflags "-X .../internal/cli.Version=1.2.3".
var Version = "0.3.0"

// RunOptions override standard I/O. Nil fields use the process's streams.
type RunOptions struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run runs the CLI with args (typically os.Args, program name included).
//
// It returns an exit code and an error:
//   - 0 -> err == nil
//   - 1 -> err != nil; args were well-formed but the command failed (ex: unreadable file).
//   - 2 -> err != nil; args could not be parsed or were misused.
//
// Run has already written any error message to opts.Err (or stderr); callers only need to exit with the code.
func Run(args []string, opts *RunOptions) (int, error) {
	argv := args
	if len(argv) > 0 {
		argv = argv[1:]
	}

	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout
	var errW io.Writer = os.Stderr
	if opts != nil {
		if opts.In != nil {
			in = opts.In
		}
		if opts.Out != nil {
			out = opts.Out
		}
		if opts.Err != nil {
			errW = opts.Err
		}
	}

	// Out is passed through untouched so color detection sees the real terminal. Stderr is teed to build the returned error.
	var stderrBuf bytes.Buffer
	exitCode := qcli.Run(context.Background(), newRootCommand(), qcli.Options{
		Args: argv,
		In:   in,
		Out:  out,
		Err:  io.MultiWriter(errW, &stderrBuf),
	})
	if exitCode == 0 {
		return 0, nil
	}

	msg := strings.TrimSpace(stderrBuf.String())
	if msg == "" {
		return exitCode, fmt.Errorf("exit code %d", exitCode)
	}
	return exitCode, errors.New(msg)
}
