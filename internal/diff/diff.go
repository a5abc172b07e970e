package diff

import (
	"fmt"
	"strings"

	"github.com/codalotl/textdiff/internal/lcs"
)

// Op is the classification of a run of tokens.
type Op int

// Operations from original text to edited text.
const (
	OpSame Op = iota
	OpAdd
	OpRem
)

var opNames = map[Op]string{
	OpSame: "same",
	OpAdd:  "add",
	OpRem:  "rem",
}

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// MarshalText encodes op as its lowercase name.
func (op Op) MarshalText() ([]byte, error) {
	name, ok := opNames[op]
	if !ok {
		return nil, fmt.Errorf("unknown op %d", int(op))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a name written by MarshalText.
func (op *Op) UnmarshalText(b []byte) error {
	for k, name := range opNames {
		if name == string(b) {
			*op = k
			return nil
		}
	}
	return fmt.Errorf("unknown op %q", string(b))
}

// Difference is one entry of a Changeset: one or more consecutive tokens of the same Op, rejoined with the delimiter.
type Difference struct {
	Op   Op     `json:"op"`
	Text string `json:"text"`
}

// Same returns an OpSame Difference.
func Same(text string) Difference { return Difference{Op: OpSame, Text: text} }

// Add returns an OpAdd Difference.
func Add(text string) Difference { return Difference{Op: OpAdd, Text: text} }

// Rem returns an OpRem Difference.
func Rem(text string) Difference { return Difference{Op: OpRem, Text: text} }

func (d Difference) String() string {
	return fmt.Sprintf("%s(%q)", d.Op, d.Text)
}

// Changeset is the ordered list of Differences that transforms an original text into an edited one.
type Changeset []Difference

// Original reconstructs the original text (OpSame and OpRem entries).
func (c Changeset) Original() string {
	return c.concat(OpRem)
}

// Edited reconstructs the edited text (OpSame and OpAdd entries).
func (c Changeset) Edited() string {
	return c.concat(OpAdd)
}

func (c Changeset) concat(side Op) string {
	var b strings.Builder
	for _, d := range c {
		if d.Op == OpSame || d.Op == side {
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

func (c Changeset) String() string {
	parts := make([]string, len(c))
	for i, d := range c {
		parts[i] = d.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Tokenize splits s on every occurrence of split, exactly like strings.Split: empty tokens between consecutive delimiters are kept, an empty split yields one token
// per UTF-8 sequence, and the empty string is one empty token unless split is also empty.
func Tokenize(s, split string) []string {
	return strings.Split(s, split)
}

// Diff diffs orig to edit, tokenizing both on split. It returns the edit distance (the number of removed plus added tokens) and the changeset.
//
// Diff panics if the changeset it builds violates the Changeset invariants; that would be a bug in this package, not a problem with the input.
func Diff(orig, edit, split string) (int, Changeset) {
	origTokens := Tokenize(orig, split)
	editTokens := Tokenize(edit, split)

	distance, common := lcs.Compute(origTokens, editTokens)
	changeset := mergeTokens(origTokens, editTokens, common, split)

	if err := changeset.validate(orig, edit); err != nil {
		panic(fmt.Errorf("Diff: validate failed with %v", err))
	}

	return distance, changeset
}
