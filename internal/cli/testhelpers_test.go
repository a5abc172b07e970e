package cli

import (
	"os"
	"path/filepath"
	"testing"
)

// isolateEnv points HOME and the working directory at empty temp dirs and unsets every variable textdiff reads, so tests don't see the developer's configuration.
func isolateEnv(t *testing.T) (home string, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	for _, name := range []string{"TEXTDIFF_SPLIT", "TEXTDIFF_COLOR", "TEXTDIFF_FORMAT", "TEXTDIFF_STATS", "TEXTDIFF_LOG_FILE", "NO_COLOR"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	chdir(t, wd)
	return home, wd
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+): it changes the working directory for the rest of the test and restores it during cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	if filepath.IsAbs(dir) {
		t.Setenv("PWD", dir)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
