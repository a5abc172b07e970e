package diff

import "fmt"

// Merge builds the changeset of orig to edit from common, a common subsequence of both texts' tokens (as returned by lcs.Compute). split must be the delimiter
// used to produce the tokens.
//
// Merge panics if common is not a subsequence of both token sequences.
func Merge(orig, edit string, common []string, split string) Changeset {
	return mergeTokens(Tokenize(orig, split), Tokenize(edit, split), common, split)
}

// merger accumulates a Changeset, grouping same-Op runs and placing delimiters.
type merger struct {
	split string
	out   Changeset

	// Delimiters owed to the next orig/edit token. Set when a Same token is followed by a delimiter on one side only.
	pendingOrig string
	pendingEdit string
}

func mergeTokens(orig, edit, common []string, split string) Changeset {
	m := &merger{split: split}

	i, j := 0, 0
	for k, tok := range common {
		for ; i < len(orig) && orig[i] != tok; i++ {
			m.removed(orig, i)
		}
		if i == len(orig) {
			panic(fmt.Sprintf("diff: common token %d (%q) not found in original", k, tok))
		}
		for ; j < len(edit) && edit[j] != tok; j++ {
			m.added(edit, j)
		}
		if j == len(edit) {
			panic(fmt.Sprintf("diff: common token %d (%q) not found in edited", k, tok))
		}
		m.same(orig, edit, i, j)
		i++
		j++
	}
	for ; i < len(orig); i++ {
		m.removed(orig, i)
	}
	for ; j < len(edit); j++ {
		m.added(edit, j)
	}

	return m.out
}

func (m *merger) removed(orig []string, i int) {
	text := m.pendingOrig + orig[i]
	m.pendingOrig = ""
	if i < len(orig)-1 {
		text += m.split
	}
	m.push(OpRem, text)
}

func (m *merger) added(edit []string, j int) {
	text := m.pendingEdit + edit[j]
	m.pendingEdit = ""
	if j < len(edit)-1 {
		text += m.split
	}
	m.push(OpAdd, text)
}

// same emits orig[i] (== edit[j]). The delimiter after it is only part of the Same text if both sides have one; otherwise it is owed to the next token of the side
// that has it, which is necessarily a Rem or Add since the other side has no tokens left.
func (m *merger) same(orig, edit []string, i, j int) {
	text := orig[i]
	moreOrig := i < len(orig)-1
	moreEdit := j < len(edit)-1
	switch {
	case moreOrig && moreEdit:
		text += m.split
	case moreOrig:
		m.pendingOrig = m.split
	case moreEdit:
		m.pendingEdit = m.split
	}
	m.push(OpSame, text)
}

// push appends text as op, concatenating onto the previous entry if it has the same op. Empty text (an empty token with no delimiter) is dropped.
func (m *merger) push(op Op, text string) {
	if text == "" {
		return
	}
	if n := len(m.out); n > 0 && m.out[n-1].Op == op {
		m.out[n-1].Text += text
		return
	}
	m.out = append(m.out, Difference{Op: op, Text: text})
}
