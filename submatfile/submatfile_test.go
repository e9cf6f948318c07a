package submatfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	sm, err := Parse(strings.NewReader("A\tA\t4\nA\tB\t-2\n"))
	require.NoError(t, err)

	score, ok := sm.Score('A', 'B')
	require.True(t, ok)
	require.Equal(t, -2.0, score)
}

func TestParseRejectsShortLine(t *testing.T) {
	_, err := Parse(strings.NewReader("A\tB\n"))
	require.Error(t, err)
}

func TestParseStopsAtBlankLine(t *testing.T) {
	sm, err := Parse(strings.NewReader("A\tA\t4\n\nB\tB\tnot-a-number\n"))
	require.NoError(t, err)

	_, ok := sm.Score('B', 'B')
	require.False(t, ok, "content after the blank line must be ignored")
}
