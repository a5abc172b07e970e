package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Options configure Run.
type Options struct {
	// Args is argv without the program name (typically os.Args[1:]).
	Args []string

	// In/Out/Err override standard I/O. If nil, the process's are used.
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Context is passed to a command handler.
type Context struct {
	context.Context

	Command *Command
	Args    []string

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

var errHelpPrinted = errors.New("help printed")

// Run parses opts.Args against the tree rooted at root, runs the selected command, and returns a process exit code. Errors and usage are written to opts.Err.
func Run(ctx context.Context, root *Command, opts Options) int {
	if root == nil || root.Name == "" {
		panic("cli: Run called with nil or unnamed root")
	}

	in, out, errOut := opts.In, opts.Out, opts.Err
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	cmd, args, err := parseArgv(root, opts.Args, out)
	if errors.Is(err, errHelpPrinted) {
		return 0
	}
	if err != nil {
		printUsageError(root, cmd, err, errOut)
		return 2
	}

	if cmd.Run == nil {
		if len(args) == 0 {
			err = Usagef("missing required subcommand")
		} else {
			err = Usagef("unknown subcommand: %s", args[0])
		}
		printUsageError(root, cmd, err, errOut)
		return 2
	}

	if cmd.Args != nil {
		if err := cmd.Args(args); err != nil {
			var ec ExitCoder
			if !errors.As(err, &ec) {
				err = UsageError{Message: err.Error()}
			}
			return exitFor(root, cmd, err, errOut)
		}
	}

	c := &Context{Context: ctx, Command: cmd, Args: args, In: in, Out: out, Err: errOut}
	if err := cmd.Run(c); err != nil {
		return exitFor(root, cmd, err, errOut)
	}
	return 0
}

// parseArgv selects the deepest command named by leading non-flag tokens and parses flags anywhere in argv. Everything after "--" is positional.
func parseArgv(root *Command, argv []string, out io.Writer) (*Command, []string, error) {
	cmd := root
	selecting := true
	var positional []string

	for i := 0; i < len(argv); i++ {
		token := argv[i]
		switch {
		case token == "--":
			positional = append(positional, argv[i+1:]...)
			return cmd, positional, nil
		case token == "-h" || token == "--help":
			writeHelp(out, root, cmd)
			return cmd, nil, errHelpPrinted
		case strings.HasPrefix(token, "-") && token != "-":
			consumed, err := parseFlag(cmd.activeFlags(), token, argv[i+1:])
			if err != nil {
				return cmd, nil, err
			}
			i += consumed
		default:
			if selecting {
				if child := cmd.child(token); child != nil {
					cmd = child
					continue
				}
				selecting = false
			}
			positional = append(positional, token)
		}
	}
	return cmd, positional, nil
}

// parseFlag parses one flag token (--name, --name=v, -n, -n=v, -nv) and returns how many of the following tokens it consumed as a value.
func parseFlag(active activeFlags, token string, rest []string) (int, error) {
	var def *flagDef
	var value string
	hasValue := false

	if long, ok := strings.CutPrefix(token, "--"); ok {
		name, v, found := strings.Cut(long, "=")
		def, value, hasValue = active.byLong[name], v, found
	} else {
		body := []rune(token[1:])
		def = active.byShort[body[0]]
		if len(body) > 1 {
			value, hasValue = strings.TrimPrefix(string(body[1:]), "="), true
		}
	}
	if def == nil {
		return 0, Usagef("unknown flag: %s", token)
	}

	consumed := 0
	if !hasValue {
		if def.kind == flagBool {
			value = "true"
		} else {
			if len(rest) == 0 || rest[0] == "--" {
				return 0, Usagef("flag needs a value: %s", token)
			}
			value, consumed = rest[0], 1
		}
	}
	if err := def.set(value); err != nil {
		return 0, Usagef("invalid value for %s: %v", def.display(), err)
	}
	return consumed, nil
}

func exitFor(root, cmd *Command, err error, errOut io.Writer) int {
	code := 1
	var ec ExitCoder
	if errors.As(err, &ec) {
		code = ec.ExitCode()
	}
	switch code {
	case 0:
		return 0
	case 2:
		printUsageError(root, cmd, err, errOut)
		return 2
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(errOut, msg)
	}
	return code
}

func printUsageError(root, cmd *Command, err error, errOut io.Writer) {
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(errOut, msg)
		fmt.Fprintln(errOut)
	}
	writeHelp(errOut, root, cmd)
}
