package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"cloudeng.io/errors"

	"github.com/codalotl/textdiff/internal/diff"
	"github.com/codalotl/textdiff/internal/q/cascade"
)

// Config is textdiff's configuration loaded from a cascade of sources. Command-line flags override it.
type Config struct {
	// Split is a delimiter name ("char", "word", "line") or a literal delimiter with Go escapes. Defaults to "word".
	Split           string             `json:"split"`
	SplitProvidence cascade.Providence `json:"-"`

	// Color is "auto", "always" or "never". Defaults to "auto": color only when writing to a terminal.
	Color           string             `json:"color"`
	ColorProvidence cascade.Providence `json:"-"`

	// Format is "text" or "json". Defaults to "text".
	Format           string             `json:"format"`
	FormatProvidence cascade.Providence `json:"-"`

	// Stats appends a Summary to the output.
	Stats           bool               `json:"stats"`
	StatsProvidence cascade.Providence `json:"-"`
}

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"

	formatText = "text"
	formatJSON = "json"
)

// configFileName is relative to the home directory (global) or to the nearest ancestor directory containing it (project).
var configFileName = filepath.Join(".textdiff", "config.json")

func loadConfig() (Config, error) {
	loader := cascade.New().
		WithDefaults(map[string]any{
			"split":  "word",
			"color":  colorAuto,
			"format": formatText,
			"stats":  false,
		}).
		WithJSONFile(filepath.Join("~", configFileName)).
		WithNearestJSONFile(configFileName, "").
		WithEnv(map[string]string{
			"split":  "TEXTDIFF_SPLIT",
			"color":  "TEXTDIFF_COLOR",
			"format": "TEXTDIFF_FORMAT",
			"stats":  "TEXTDIFF_STATS",
		})

	var cfg Config
	if err := loader.StrictlyLoad(&cfg); err != nil {
		return Config{}, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

// validateConfig reports every invalid setting, not just the first.
func validateConfig(cfg Config) error {
	errs := &errors.M{}
	if _, err := diff.ParseSplit(cfg.Split); err != nil {
		errs.Append(fmt.Errorf("invalid configuration: split (from %s): %w", cfg.SplitProvidence, err))
	}
	switch cfg.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		errs.Append(fmt.Errorf("invalid configuration: color (from %s) must be auto, always or never (got %q)", cfg.ColorProvidence, cfg.Color))
	}
	switch cfg.Format {
	case formatText, formatJSON:
	default:
		errs.Append(fmt.Errorf("invalid configuration: format (from %s) must be text or json (got %q)", cfg.FormatProvidence, cfg.Format))
	}
	return errs.Err()
}

// writeConfigJSON writes cfg followed by a "sources" object naming where each value came from.
func writeConfigJSON(w io.Writer, cfg Config) error {
	doc := struct {
		Config
		Sources map[string]string `json:"sources"`
	}{
		Config: cfg,
		Sources: map[string]string{
			"split":  cfg.SplitProvidence.String(),
			"color":  cfg.ColorProvidence.String(),
			"format": cfg.FormatProvidence.String(),
			"stats":  cfg.StatsProvidence.String(),
		},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}
