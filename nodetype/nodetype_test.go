package nodetype

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tgillet1/treeseqalign"
)

func TestParseNodeTypesFile(t *testing.T) {
	nt, err := ParseNodeTypesFile(strings.NewReader("A:A\nC:BCDE\nT:T\n"))
	require.NoError(t, err)

	typ, ok := nt.Classify('B')
	require.True(t, ok)
	require.Equal(t, treeseqalign.NodeC, typ)

	_, ok = nt.Classify('Z')
	require.False(t, ok)
}

func TestParseNodeTypesFileRejectsUnknownTag(t *testing.T) {
	_, err := ParseNodeTypesFile(strings.NewReader("X:ABC\n"))
	require.Error(t, err)
}

func TestParseNodeTypesFileStopsAtBlankLine(t *testing.T) {
	nt, err := ParseNodeTypesFile(strings.NewReader("A:A\nC:C\n\nT:T\nX:garbage\n"))
	require.NoError(t, err)

	_, ok := nt.Classify('T')
	require.False(t, ok, "content after the blank line must be ignored")
}

func TestDefault(t *testing.T) {
	nt := Default()
	typ, ok := nt.Classify('A')
	require.True(t, ok)
	require.Equal(t, treeseqalign.NodeA, typ)
}
