package simplelogger

import (
	"bytes"
	"fmt"
	"os"
	"sync"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "TEXTDIFF_LOG_FILE"

var mu sync.Mutex

// Log appends a printf-style line to the file named by TEXTDIFF_LOG_FILE, adding a trailing newline if format lacks one.
//
// If TEXTDIFF_LOG_FILE is unset/empty or the path can't be opened as a file, Log is a no-op. Logging never fails the caller.
func Log(format string, args ...any) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return
	}
	appendLine(path, format, args...)
}

// Enabled reports whether Log will write anywhere. Use it to skip building expensive log arguments.
func Enabled() bool {
	return os.Getenv(EnvVar) != ""
}

func appendLine(path string, format string, args ...any) {
	var b bytes.Buffer
	_, _ = fmt.Fprintf(&b, format, args...)
	if b.Len() == 0 || b.Bytes()[b.Len()-1] != '\n' {
		_ = b.WriteByte('\n')
	}

	// One open/write/close per line, serialized within the process.
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.Write(b.Bytes())
}
