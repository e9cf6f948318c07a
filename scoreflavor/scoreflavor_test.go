package scoreflavor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tgillet1/treeseqalign"
)

func TestGapCount(t *testing.T) {
	r := treeseqalign.Result{A1: []byte("AB-D"), A2: []byte("A-CD")}
	require.Equal(t, 2, GapCount(r))
}

func TestExcessGap(t *testing.T) {
	r := treeseqalign.Result{A1: []byte("AB-D"), A2: []byte("A-CD")}
	require.Equal(t, 2, ExcessGap(r, 3, 3))
	require.Equal(t, 2, ExcessGap(r, 4, 4))
}

func TestLengthNormalized(t *testing.T) {
	r := treeseqalign.Result{Score: 10}
	require.Equal(t, 2.5, LengthNormalized(r, 4, 2))
	require.Equal(t, 0.0, LengthNormalized(r, 0, 0))
}
