package diff

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderColor(t *testing.T) {
	_, cs := Diff("Diffs are awesome", "Diffs are cool", " ")

	exp := "Diffs are \x1b[91mawesome\x1b[0m\x1b[92mcool\x1b[0m"
	assert.Equal(t, exp, cs.RenderColor())
}

func TestRenderColor_Lines(t *testing.T) {
	_, cs := Diff("a\nb\nc", "a\nx\nc", "\n")

	exp := "a\n\x1b[91mb\n\x1b[0m\x1b[92mx\n\x1b[0mc"
	assert.Equal(t, exp, cs.RenderColor())
}

func TestRenderPlain(t *testing.T) {
	_, cs := Diff("a b", "b c", " ")
	assert.Equal(t, "[-a -]b{+ c+}", cs.RenderPlain())

	_, cs = Diff("same", "same", "")
	assert.Equal(t, "same", cs.RenderPlain())

	assert.Equal(t, "", Changeset(nil).RenderPlain())
	assert.Equal(t, "", Changeset(nil).RenderColor())
}

func TestFprintDiff(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FprintDiff(&buf, "Diffs are awesome", "Diffs are cool", " "))
	assert.Equal(t, "Diffs are \x1b[91mawesome\x1b[0m\x1b[92mcool\x1b[0m\n", buf.String())

	buf.Reset()
	require.NoError(t, FprintDiff(&buf, "", "", ""))
	assert.Equal(t, "\n", buf.String())
}
