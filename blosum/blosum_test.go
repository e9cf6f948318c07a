package blosum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNamedKnownMatrix(t *testing.T) {
	sm, ok := Named("blosum62", -8)
	require.True(t, ok)

	score, ok := sm.Score('A', 'A')
	require.True(t, ok)
	require.Equal(t, 4.0, score)

	score, ok = sm.Score('W', 'W')
	require.True(t, ok)
	require.Equal(t, 11.0, score)

	gap, ok := sm.GapCost('A')
	require.True(t, ok)
	require.Equal(t, -8.0, gap)
}

func TestNamedUnknownMatrix(t *testing.T) {
	_, ok := Named("blosum100", -8)
	require.False(t, ok)
}

func TestMatricesAreSymmetric(t *testing.T) {
	for name, table := range map[string][20][20]int{
		"blosum45": Matrix45,
		"blosum62": Matrix62,
		"blosum80": Matrix80,
	} {
		for i := range table {
			for j := range table[i] {
				require.Equalf(t, table[i][j], table[j][i],
					"%s asymmetric at (%c,%c)", name, Alphabet[i], Alphabet[j])
			}
		}
	}
}
