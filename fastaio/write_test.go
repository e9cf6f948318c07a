package fastaio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tgillet1/treeseqalign"
)

func TestWriteAlignment(t *testing.T) {
	var buf bytes.Buffer
	r := treeseqalign.Result{Score: -3, A1: []byte("AC-T"), A2: []byte("ACCT")}
	require.NoError(t, WriteAlignment(&buf, "target", "query", r))
	require.Equal(t, "target\tquery\tAC-T\tACCT\n", buf.String())
}

func TestWriteScoreMatrix(t *testing.T) {
	var buf bytes.Buffer
	scores := [][]float64{{1, 2}, {3, 4}}
	require.NoError(t, WriteScoreMatrix(&buf, []string{"t1", "t2"}, []string{"q1", "q2"}, scores))
	require.Equal(t, "\tq1\tq2\nt1\t1\t2\nt2\t3\t4\n", buf.String())
}
