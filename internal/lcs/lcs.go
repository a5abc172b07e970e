// Package lcs computes the longest common subsequence of two token sequences with the classic dynamic-programming table.
//
// The table has an extra 0th row and column so that T[i][j] is the LCS length of orig[:i] and edit[:j]. Time and space are both O(len(orig) * len(edit)).
//
// When several subsequences of maximal length exist, backtracking prefers dropping a token of orig over dropping a token of edit (it moves "up" on ties). This
// affects which LCS is returned, never its length.
package lcs

// Table is a filled LCS table for orig and edit.
type Table[T comparable] struct {
	orig  []T
	edit  []T
	cells [][]int
}

// NewTable builds and fills the table for orig and edit.
func NewTable[T comparable](orig, edit []T) *Table[T] {
	cells := make([][]int, len(orig)+1)
	for i := range cells {
		cells[i] = make([]int, len(edit)+1)
	}
	for i := 1; i <= len(orig); i++ {
		for j := 1; j <= len(edit); j++ {
			if orig[i-1] == edit[j-1] {
				cells[i][j] = cells[i-1][j-1] + 1
				continue
			}
			cells[i][j] = max(cells[i-1][j], cells[i][j-1])
		}
	}
	return &Table[T]{orig: orig, edit: edit, cells: cells}
}

// Len returns the length of the longest common subsequence.
func (t *Table[T]) Len() int {
	return t.cells[len(t.orig)][len(t.edit)]
}

// Backtrack reconstructs one longest common subsequence, in document order. It returns nil if there is no common token.
func (t *Table[T]) Backtrack() []T {
	n := t.Len()
	if n == 0 {
		return nil
	}

	// Fill from the back; backtracking visits the subsequence in reverse.
	common := make([]T, n)
	k := n
	i, j := len(t.orig), len(t.edit)
	for i > 0 && j > 0 {
		switch {
		case t.orig[i-1] == t.edit[j-1]:
			k--
			common[k] = t.orig[i-1]
			i--
			j--
		case t.cells[i-1][j] >= t.cells[i][j-1]:
			i--
		default:
			j--
		}
	}
	if k != 0 {
		panic("lcs: backtracking did not recover the full subsequence")
	}
	return common
}

// Distance returns len(orig) + len(edit) - 2*Len(): the number of tokens that must be removed from orig and added from edit.
func (t *Table[T]) Distance() int {
	return len(t.orig) + len(t.edit) - 2*t.Len()
}

// Compute returns the edit distance between orig and edit along with one longest common subsequence.
func Compute[T comparable](orig, edit []T) (int, []T) {
	t := NewTable(orig, edit)
	return t.Distance(), t.Backtrack()
}
