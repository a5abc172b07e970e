package diff

import (
	"fmt"
	"strconv"
	"strings"
)

// Common delimiters.
const (
	SplitChar = ""
	SplitWord = " "
	SplitLine = "\n"
)

// ParseSplit maps a user-supplied delimiter description to the delimiter. "char", "word" and "line" (or their plurals) name the common delimiters; anything else
// is taken literally after interpreting Go escape sequences (ex: `\t` is a tab, `\n` a newline).
func ParseSplit(s string) (string, error) {
	switch strings.ToLower(s) {
	case "char", "chars":
		return SplitChar, nil
	case "word", "words":
		return SplitWord, nil
	case "line", "lines":
		return SplitLine, nil
	}
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	v, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
	if err != nil {
		return "", fmt.Errorf("invalid split %q: %w", s, err)
	}
	return v, nil
}
