package treeseqalign

import (
	"bytes"
	"math"
	"testing"
)

func alignTestMatrix() *SubstMatrix {
	return NewSubstMatrix(map[[2]byte]float64{
		{'A', 'A'}: 5,
		{'C', 'C'}: 6,
		{'T', 'T'}: 7,
		{'A', 'C'}: -3,
	})
}

func alignTestCosts() Costs {
	return Costs{Gap: -1, GapOpen: -4}
}

func mustAlign(t *testing.T, s1, s2 string) Result {
	t.Helper()
	r, err := Align(
		NewSequence("s1", []byte(s1)),
		NewSequence("s2", []byte(s2)),
		alignTestCosts(), alignTestMatrix(), DefaultNodeTypes())
	if err != nil {
		t.Fatalf("Align(%q, %q): %v", s1, s2, err)
	}
	return r
}

func TestAlignIdenticalSequences(t *testing.T) {
	r := mustAlign(t, "ACCT", "ACCT")
	if want := 5.0 + 6.0 + 6.0 + 7.0; r.Score != want {
		t.Fatalf("Score = %v, want %v", r.Score, want)
	}
	if !bytes.Equal(r.A1, []byte("ACCT")) || !bytes.Equal(r.A2, []byte("ACCT")) {
		t.Fatalf("alignment = (%q, %q), want (%q, %q)", r.A1, r.A2, "ACCT", "ACCT")
	}
}

func TestAlignSingleInteriorGap(t *testing.T) {
	r := mustAlign(t, "ACCT", "ACT")
	want := 5.0 + 6.0 + 7.0 + alignTestCosts().Gap + alignTestCosts().GapOpen
	if r.Score != want {
		t.Fatalf("Score = %v, want %v", r.Score, want)
	}
	if len(r.A1) != len(r.A2) {
		t.Fatalf("aligned strings have different lengths: %d vs %d", len(r.A1), len(r.A2))
	}
	gaps := 0
	for i := range r.A1 {
		if r.A1[i] == '-' || r.A2[i] == '-' {
			gaps++
		}
	}
	if gaps != 1 {
		t.Fatalf("expected exactly one gap column, got %d in (%q, %q)", gaps, r.A1, r.A2)
	}
}

func TestAlignRejectsUnknownResidue(t *testing.T) {
	_, err := Align(
		NewSequence("s1", []byte("ACCT")),
		NewSequence("s2", []byte("ACXT")),
		alignTestCosts(), alignTestMatrix(), DefaultNodeTypes())
	if _, ok := err.(*UnknownResidueError); !ok {
		t.Fatalf("Align: err = %v (%T), want *UnknownResidueError", err, err)
	}
}

func TestAlignRejectsMalformedTree(t *testing.T) {
	_, err := Align(
		NewSequence("s1", []byte("ACC")),
		NewSequence("s2", []byte("ACCT")),
		alignTestCosts(), alignTestMatrix(), DefaultNodeTypes())
	if _, ok := err.(*MalformedTreeError); !ok {
		t.Fatalf("Align: err = %v (%T), want *MalformedTreeError", err, err)
	}
}

func TestAlignRejectsInvalidCosts(t *testing.T) {
	bad := Costs{Gap: -1, GapOpen: math.Inf(1)}
	_, err := Align(
		NewSequence("s1", []byte("ACCT")),
		NewSequence("s2", []byte("ACCT")),
		bad, alignTestMatrix(), DefaultNodeTypes())
	if _, ok := err.(*InvalidCostError); !ok {
		t.Fatalf("Align: err = %v (%T), want *InvalidCostError", err, err)
	}
}
