package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSplit(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "char", want: ""},
		{in: "Chars", want: ""},
		{in: "word", want: " "},
		{in: "lines", want: "\n"},
		{in: "", want: ""},
		{in: ",", want: ","},
		{in: `\t`, want: "\t"},
		{in: `\r\n`, want: "\r\n"},
		{in: `"\n`, want: "\"\n"},
		{in: "\n", want: "\n"},
		{in: `é`, want: "é"},
	}
	for _, tt := range tests {
		got, err := ParseSplit(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseSplit(`\q`)
	assert.Error(t, err)
}
