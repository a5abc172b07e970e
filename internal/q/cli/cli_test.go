package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, root *Command, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(context.Background(), root, Options{Args: args, Out: &out, Err: &errOut})
	return code, out.String(), errOut.String()
}

func newTestTree() (*Command, *Command, *string, *bool, *int) {
	root := &Command{Name: "prog", Short: "Test program"}
	split := root.PersistentFlags().String("split", 's', "word", "Delimiter")
	stats := root.PersistentFlags().Bool("stats", 0, false, "Print stats")

	files := &Command{Name: "files", Aliases: []string{"f"}, Short: "Diff files", Args: ExactArgs(2)}
	ctxLines := files.Flags().Int("context", 'c', 3, "Context lines")
	root.AddCommand(files)
	return root, files, split, stats, ctxLines
}

func TestRun_SelectsCommandAndParsesFlags(t *testing.T) {
	root, files, split, stats, ctxLines := newTestTree()
	var got []string
	files.Run = func(c *Context) error {
		got = c.Args
		return nil
	}

	code, stdout, stderr := runCLI(t, root, "--stats", "files", "a.txt", "-s=line", "b.txt", "--context", "5")
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stdout)
	assert.Equal(t, []string{"a.txt", "b.txt"}, got)
	assert.Equal(t, "line", *split)
	assert.True(t, *stats)
	assert.Equal(t, 5, *ctxLines)
	assert.True(t, root.PersistentFlags().Changed("split"))
	assert.False(t, files.Flags().Changed("missing"))
}

func TestRun_AliasShortValueAndDashDash(t *testing.T) {
	root, files, split, _, _ := newTestTree()
	var got []string
	files.Run = func(c *Context) error {
		got = c.Args
		return nil
	}

	code, _, stderr := runCLI(t, root, "f", "-s", "", "--", "-a", "--stats")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "", *split)
	assert.Equal(t, []string{"-a", "--stats"}, got)
	assert.False(t, root.PersistentFlags().Changed("stats"))
}

func TestRun_UsageErrors(t *testing.T) {
	root, files, _, _, _ := newTestTree()
	files.Run = func(*Context) error { return nil }

	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{name: "missing subcommand", args: nil, msg: "missing required subcommand"},
		{name: "unknown subcommand", args: []string{"nope"}, msg: "unknown subcommand: nope"},
		{name: "unknown flag", args: []string{"files", "--nope"}, msg: "unknown flag: --nope"},
		{name: "missing value", args: []string{"files", "a", "b", "--split"}, msg: "flag needs a value: --split"},
		{name: "bad int", args: []string{"files", "a", "b", "-c", "x"}, msg: "invalid value for -c/--context"},
		{name: "arg count", args: []string{"files", "a"}, msg: "expected 2 args, got 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, root, tt.args...)
			assert.Equal(t, 2, code)
			assert.Contains(t, stderr, tt.msg)
			assert.Contains(t, stderr, "Usage:")
		})
	}
}

func TestRun_HandlerErrors(t *testing.T) {
	root, files, _, _, _ := newTestTree()

	files.Run = func(*Context) error { return errors.New("boom") }
	code, _, stderr := runCLI(t, root, "files", "a", "b")
	assert.Equal(t, 1, code)
	assert.Equal(t, "boom\n", stderr)

	files.Run = func(*Context) error { return ExitError{Code: 3} }
	code, _, stderr = runCLI(t, root, "files", "a", "b")
	assert.Equal(t, 3, code)
	assert.Empty(t, stderr)

	files.Run = func(*Context) error { return Usagef("bad input %d", 7) }
	code, _, stderr = runCLI(t, root, "files", "a", "b")
	assert.Equal(t, 2, code)
	assert.True(t, strings.HasPrefix(stderr, "bad input 7\n"))
}

func TestRun_Help(t *testing.T) {
	root, files, _, _, _ := newTestTree()
	files.Run = func(*Context) error { return nil }
	files.Example = "prog files old.txt new.txt"

	code, stdout, _ := runCLI(t, root, "files", "--help")
	require.Equal(t, 0, code)
	exp := "prog files - Diff files\n" +
		"\n" +
		"Usage:\n" +
		"  prog files [flags] [args]\n" +
		"\n" +
		"Flags:\n" +
		"  -c, --context <int>\tContext lines\n" +
		"  -s, --split <string>\tDelimiter\n" +
		"      --stats\tPrint stats\n" +
		"\n" +
		"Example:\n" +
		"  prog files old.txt new.txt\n"
	assert.Equal(t, exp, stdout)

	code, stdout, _ = runCLI(t, root, "-h")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Commands:\n  files\tDiff files\n")
	assert.Contains(t, stdout, "prog [flags] <command>")
}

func TestArgsHelpers(t *testing.T) {
	assert.NoError(t, NoArgs(nil))
	assert.Error(t, NoArgs([]string{"a"}))
	assert.NoError(t, RangeArgs(1, 2)([]string{"a"}))
	assert.EqualError(t, RangeArgs(1, 2)([]string{"a", "b", "c"}), "expected 1-2 args, got 3")
	assert.EqualError(t, ExactArgs(1)(nil), "expected 1 arg, got 0")
}

func TestAddCommand_Panics(t *testing.T) {
	root := &Command{Name: "prog"}
	assert.Panics(t, func() { root.AddCommand(nil) })
	assert.Panics(t, func() { root.AddCommand(&Command{}) })

	child := &Command{Name: "c"}
	root.AddCommand(child)
	assert.Panics(t, func() { (&Command{Name: "other"}).AddCommand(child) })

	assert.Panics(t, func() {
		fs := newFlagSet()
		fs.Bool("x", 'x', false, "")
		fs.String("x", 0, "", "")
	})
}
