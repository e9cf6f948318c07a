package treeseqalign

import "testing"

func newTestMatrix() *SubstMatrix {
	return NewSubstMatrix(map[[2]byte]float64{
		{'A', 'A'}: 5, {'A', '-'}: -1,
		{'C', 'C'}: 6, {'C', '-'}: -1,
		{'T', 'T'}: 7, {'T', '-'}: -1,
	})
}

func TestBuildTATableSingleSubtree(t *testing.T) {
	s := NewSequence("s", []byte("ACCT"))
	ta, err := buildTATable(s, DefaultNodeTypes(), newTestMatrix())
	if err != nil {
		t.Fatalf("buildTATable: %v", err)
	}
	if got, want := ta.partner[3], 0; got != want {
		t.Fatalf("partner[3] = %d, want %d", got, want)
	}
	if got, want := ta.subtreeGapCost[3], -3.0; got != want {
		t.Fatalf("subtreeGapCost[3] = %v, want %v (T's own cost plus two interior C's)", got, want)
	}
}

func TestBuildTATableNested(t *testing.T) {
	s := NewSequence("s", []byte("AACTT"))
	ta, err := buildTATable(s, DefaultNodeTypes(), newTestMatrix())
	if err != nil {
		t.Fatalf("buildTATable: %v", err)
	}
	if got, want := ta.partner[3], 1; got != want {
		t.Fatalf("partner[3] (inner T) = %d, want %d (inner A)", got, want)
	}
	if got, want := ta.subtreeGapCost[3], -2.0; got != want {
		t.Fatalf("subtreeGapCost[3] = %v, want %v (inner T's own cost plus one interior C)", got, want)
	}
	if got, want := ta.partner[4], 0; got != want {
		t.Fatalf("partner[4] (outer T) = %d, want %d (outer A)", got, want)
	}
	// The outer subtree's interior spans index 1..3 (inner A, C, inner T)
	// plus the outer T's own gap cost: -1 (inner A), plus the inner T's -2
	// total (C and the inner T folded in), plus -1 for the outer T itself.
	if got, want := ta.subtreeGapCost[4], -4.0; got != want {
		t.Fatalf("subtreeGapCost[4] = %v, want %v", got, want)
	}
}

func TestBuildTATableFreeTRejected(t *testing.T) {
	// A T with no enclosing A pops the a_stack sentinel; the stack can never
	// return to exactly [-1] afterward, so the end-of-scan check always
	// rejects it, even though the scan itself does not underflow.
	s := NewSequence("s", []byte("CT"))
	if _, err := buildTATable(s, DefaultNodeTypes(), newTestMatrix()); err == nil {
		t.Fatalf("buildTATable: expected MalformedTreeError for a T with no enclosing A, got nil")
	}
}

func TestBuildTATableUnbalancedErrors(t *testing.T) {
	s := NewSequence("s", []byte("TT"))
	if _, err := buildTATable(s, DefaultNodeTypes(), newTestMatrix()); err == nil {
		t.Fatalf("buildTATable: expected MalformedTreeError for a second unmatched T, got nil")
	}

	s2 := NewSequence("s2", []byte("A"))
	if _, err := buildTATable(s2, DefaultNodeTypes(), newTestMatrix()); err == nil {
		t.Fatalf("buildTATable: expected MalformedTreeError for a dangling A, got nil")
	}
}
