package diff

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/codalotl/textdiff/internal/lcs"
)

// Summary describes how much two texts differ.
type Summary struct {
	OrigTokens   int `json:"origTokens"`
	EditTokens   int `json:"editTokens"`
	CommonTokens int `json:"commonTokens"`

	// Distance is the token edit distance: OrigTokens + EditTokens - 2*CommonTokens.
	Distance int `json:"distance"`

	// Levenshtein is the character-level Levenshtein distance, where a substitution counts once. It is independent of the delimiter.
	Levenshtein int `json:"levenshtein"`
}

// Summarize computes the Summary of orig to edit, tokenized on split.
func Summarize(orig, edit, split string) Summary {
	distance := lcs.NewTable(Tokenize(orig, split), Tokenize(edit, split)).Distance()
	return SummarizeDistance(orig, edit, split, distance)
}

// SummarizeDistance is Summarize for callers that already have the token distance from Diff. It does not rebuild the LCS table.
func SummarizeDistance(orig, edit, split string, distance int) Summary {
	origTokens := len(Tokenize(orig, split))
	editTokens := len(Tokenize(edit, split))

	dmp := diffmatchpatch.New()
	charDiffs := dmp.DiffMain(orig, edit, false)

	return Summary{
		OrigTokens:   origTokens,
		EditTokens:   editTokens,
		CommonTokens: (origTokens + editTokens - distance) / 2,
		Distance:     distance,
		Levenshtein:  dmp.DiffLevenshtein(charDiffs),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("tokens: %d -> %d, common: %d, distance: %d, levenshtein: %d", s.OrigTokens, s.EditTokens, s.CommonTokens, s.Distance, s.Levenshtein)
}
