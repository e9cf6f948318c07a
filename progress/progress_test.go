package progress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIncrement(t *testing.T) {
	b := NewBar("aligning", 3)
	b.Increment()
	b.Increment()
	require.Equal(t, uint64(2), b.current)
}

func TestRenderDoesNotPanicAtZeroTotal(t *testing.T) {
	b := NewBar("aligning", 0)
	require.NotPanics(t, b.Render)
}
