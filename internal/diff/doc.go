// Package diff computes a token-level difference between an original and an edited text.
//
// Both texts are split into tokens on a caller-chosen delimiter (see Tokenize): "" gives a character-level diff, " " a word-level diff and "\n" a line-level diff.
// The longest common subsequence of the two token sequences (see internal/lcs) is then merged with both inputs into a Changeset.
//
// Representation: A Changeset is an ordered slice of Differences. Each Difference has an Op and the Text it covers:
//   - OpSame: text present in both the original and the edited text
//   - OpAdd: text present only in the edited text
//   - OpRem: text present only in the original text
//
// Invariants:
//   - concat(Text of OpSame and OpRem entries) == original
//   - concat(Text of OpSame and OpAdd entries) == edited
//   - No two adjacent entries share an Op, and no entry has empty Text.
//
// The delimiter removed by tokenization is put back into exactly one entry on each side, so re-splitting the reconstruction recovers the same tokens. At a substitution,
// removals come before additions.
//
// Getting a diff:
//
//	distance, changeset := diff.Diff("Diffs are awesome", "Diffs are cool", " ")
//	// distance == 2
//	// changeset == [Same("Diffs are "), Rem("awesome"), Add("cool")]
//
// Rendering: Changeset.RenderColor wraps additions in green and removals in red ANSI escapes; PrintDiff writes that to stdout. Changeset.RenderPlain uses [-removed-]
// and {+added+} markers instead.
package diff
