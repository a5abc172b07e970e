package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codalotl/textdiff/internal/q/cascade"
)

func TestLoadConfig_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "word", cfg.Split)
	assert.Equal(t, colorAuto, cfg.Color)
	assert.Equal(t, formatText, cfg.Format)
	assert.False(t, cfg.Stats)
	assert.True(t, cfg.SplitProvidence.Default())
	assert.True(t, cfg.StatsProvidence.Default())
	assert.NoError(t, validateConfig(cfg))
}

func TestLoadConfig_Cascade(t *testing.T) {
	home, wd := isolateEnv(t)
	globalPath := filepath.Join(home, ".textdiff", "config.json")
	writeFile(t, globalPath, `{"split": "line", "color": "never", "format": "json"}`)

	// The project file lives above the working directory and overrides the global one.
	projectPath := filepath.Join(wd, ".textdiff", "config.json")
	writeFile(t, projectPath, `{"color": "always"}`)
	sub := filepath.Join(wd, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	chdir(t, sub)

	t.Setenv("TEXTDIFF_FORMAT", "text")
	t.Setenv("TEXTDIFF_STATS", "true")

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "line", cfg.Split)
	assert.Equal(t, "json_file:"+globalPath, cfg.SplitProvidence.String())

	assert.Equal(t, colorAlways, cfg.Color)
	assert.Equal(t, "json_file:"+projectPath, cfg.ColorProvidence.String())

	assert.Equal(t, formatText, cfg.Format)
	assert.Equal(t, "env", cfg.FormatProvidence.String())

	assert.True(t, cfg.Stats)
	assert.Equal(t, "env", cfg.StatsProvidence.String())
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	home, _ := isolateEnv(t)
	writeFile(t, filepath.Join(home, ".textdiff", "config.json"), `{"split": `)

	_, err := loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load configuration")
}

func TestValidateConfig_ReportsAllErrors(t *testing.T) {
	isolateEnv(t)
	t.Setenv("TEXTDIFF_COLOR", "sometimes")
	t.Setenv("TEXTDIFF_FORMAT", "xml")

	cfg, err := loadConfig()
	require.NoError(t, err)

	err = validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `color (from env) must be auto, always or never (got "sometimes")`)
	assert.Contains(t, err.Error(), `format (from env) must be text or json (got "xml")`)
}

func TestWriteConfigJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Split: "<tab>", Color: colorNever, Format: formatText}
	cfg.SplitProvidence = cascade.Providence{SourceType: "env"}
	require.NoError(t, writeConfigJSON(&buf, cfg))
	assert.Equal(t, `{
  "split": "<tab>",
  "color": "never",
  "format": "text",
  "stats": false,
  "sources": {
    "color": "",
    "format": "",
    "split": "env",
    "stats": ""
  }
}
`, buf.String())
}
