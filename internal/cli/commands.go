package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/codalotl/textdiff/internal/diff"
	"github.com/codalotl/textdiff/internal/q/cascade"
	qcli "github.com/codalotl/textdiff/internal/q/cli"
	"github.com/codalotl/textdiff/internal/simplelogger"
)

type configState struct {
	once sync.Once
	cfg  Config
	err  error
}

func (s *configState) get() (Config, error) {
	s.once.Do(func() {
		s.cfg, s.err = loadConfig()
	})
	return s.cfg, s.err
}

// globalFlags are the persistent flags of the root command. They override Config when set.
type globalFlags struct {
	flags  *qcli.FlagSet
	split  *string
	color  *string
	format *string
	stats  *bool

	// exitCode is not part of Config: it changes the exit status, not the output.
	exitCode *bool
}

// apply returns cfg with every flag given on the command line layered on top.
func (g *globalFlags) apply(cfg Config) Config {
	fromFlag := cascade.Providence{SourceType: "flag"}
	if g.flags.Changed("split") {
		cfg.Split, cfg.SplitProvidence = *g.split, fromFlag
	}
	if g.flags.Changed("color") {
		cfg.Color, cfg.ColorProvidence = *g.color, fromFlag
	}
	if g.flags.Changed("format") {
		cfg.Format, cfg.FormatProvidence = *g.format, fromFlag
	}
	if g.flags.Changed("stats") {
		cfg.Stats, cfg.StatsProvidence = *g.stats, fromFlag
	}
	return cfg
}

func newRootCommand() *qcli.Command {
	cfgState := &configState{}

	root := &qcli.Command{
		Name:  "textdiff",
		Short: "Token-level diffs of text",
		Long:  "textdiff splits two texts into characters, words or lines and shows which tokens were kept, added or removed.",
	}

	pf := root.PersistentFlags()
	g := &globalFlags{
		flags:  pf,
		split:  pf.String("split", 's', "word", `Delimiter: "char", "word", "line", or a literal (Go escapes allowed, ex: "\t")`),
		color:  pf.String("color", 0, colorAuto, "When to color output: auto, always or never"),
		format: pf.String("format", 'f', formatText, "Output format: text or json"),
		stats:  pf.Bool("stats", 0, false, "Also print token counts, distance and character Levenshtein distance"),

		exitCode: pf.Bool("exit-code", 0, false, "Exit with 1 if the inputs differ, like diff(1)"),
	}

	// withConfig resolves the effective configuration (config files, env, then flags) before running next.
	withConfig := func(next func(c *qcli.Context, cfg Config) error) qcli.RunFunc {
		return func(c *qcli.Context) error {
			cfg, err := cfgState.get()
			if err != nil {
				return err
			}
			cfg = g.apply(cfg)
			if err := validateConfig(cfg); err != nil {
				return qcli.UsageError{Message: err.Error()}
			}
			return next(c, cfg)
		}
	}

	filesCmd := &qcli.Command{
		Name:    "files",
		Short:   "Diff two files",
		Long:    `Diff the contents of <orig> and <edit>. Either one may be "-" to read stdin.`,
		Example: "textdiff files old.txt new.txt\ntextdiff files -s line old.txt new.txt\ngit show HEAD:README.md | textdiff files - README.md",
		Args:    qcli.ExactArgs(2),
		Run: withConfig(func(c *qcli.Context, cfg Config) error {
			if c.Args[0] == "-" && c.Args[1] == "-" {
				return qcli.Usagef("at most one of <orig> and <edit> may be \"-\"")
			}
			orig, err := readInput(c, c.Args[0])
			if err != nil {
				return err
			}
			edit, err := readInput(c, c.Args[1])
			if err != nil {
				return err
			}
			return runDiff(c, cfg, orig, edit, *g.exitCode)
		}),
	}

	stringsCmd := &qcli.Command{
		Name:    "strings",
		Aliases: []string{"str"},
		Short:   "Diff two strings given as arguments",
		Example: `textdiff strings "Diffs are awesome" "Diffs are cool"` + "\n" + `textdiff strings -s char kitten sitting`,
		Args:    qcli.ExactArgs(2),
		Run: withConfig(func(c *qcli.Context, cfg Config) error {
			return runDiff(c, cfg, c.Args[0], c.Args[1], *g.exitCode)
		}),
	}

	configCmd := &qcli.Command{
		Name:  "config",
		Short: "Print the effective configuration as JSON",
		Args:  qcli.NoArgs,
		Run: withConfig(func(c *qcli.Context, cfg Config) error {
			return writeConfigJSON(c.Out, cfg)
		}),
	}

	versionCmd := &qcli.Command{
		Name:  "version",
		Short: "Print the textdiff version",
		Args:  qcli.NoArgs,
		Run: func(c *qcli.Context) error {
			_, err := fmt.Fprintf(c.Out, "textdiff %s\n", Version)
			return err
		},
	}

	root.AddCommand(filesCmd, stringsCmd, configCmd, versionCmd)
	return root
}

func readInput(c *qcli.Context, path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(c.In)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

// jsonOutput is the --format=json document.
type jsonOutput struct {
	Distance  int            `json:"distance"`
	Changeset diff.Changeset `json:"changeset"`
	Summary   *diff.Summary  `json:"summary,omitempty"`
}

// runDiff writes the diff of orig to edit in the configured format. With exitOnDiff, differing inputs end with a silent exit code 1.
func runDiff(c *qcli.Context, cfg Config, orig, edit string, exitOnDiff bool) error {
	if err := writeDiff(c, cfg, orig, edit); err != nil {
		return err
	}
	if exitOnDiff && orig != edit {
		return qcli.ExitError{Code: 1}
	}
	return nil
}

func writeDiff(c *qcli.Context, cfg Config, orig, edit string) error {
	split, err := diff.ParseSplit(cfg.Split)
	if err != nil {
		return qcli.UsageError{Message: err.Error()}
	}

	distance, changeset := diff.Diff(orig, edit, split)
	if simplelogger.Enabled() {
		simplelogger.Log("textdiff: split=%q orig=%d bytes edit=%d bytes distance=%d entries=%d", split, len(orig), len(edit), distance, len(changeset))
	}

	var summary *diff.Summary
	if cfg.Stats {
		s := diff.SummarizeDistance(orig, edit, split, distance)
		summary = &s
	}

	if cfg.Format == formatJSON {
		if changeset == nil {
			changeset = diff.Changeset{}
		}
		enc := json.NewEncoder(c.Out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(jsonOutput{Distance: distance, Changeset: changeset, Summary: summary})
	}

	rendered := changeset.RenderPlain()
	if colorEnabled(cfg.Color, c.Out) {
		rendered = changeset.RenderColor()
	}
	if _, err := fmt.Fprintln(c.Out, rendered); err != nil {
		return err
	}
	if summary == nil {
		return nil
	}
	_, err = fmt.Fprintln(c.Out, summary.String())
	return err
}
