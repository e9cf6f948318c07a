package treeseqalign

import "testing"

func TestNormalizeFillsGapDefaults(t *testing.T) {
	m := NewSubstMatrix(map[[2]byte]float64{
		{'A', 'A'}: 5,
		{'A', 'C'}: -1,
	})
	norm, err := Normalize(m, -2)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if v, ok := norm.GapCost('A'); !ok || v != -2 {
		t.Fatalf("GapCost('A') = (%v, %v), want (-2, true)", v, ok)
	}
	if v, ok := norm.GapCost('C'); !ok || v != -2 {
		t.Fatalf("GapCost('C') = (%v, %v), want (-2, true)", v, ok)
	}
	if v, ok := norm.Score('C', 'A'); !ok || v != -1 {
		t.Fatalf("Score('C','A') = (%v, %v), want (-1, true)", v, ok)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	m := NewSubstMatrix(map[[2]byte]float64{
		{'A', 'A'}: 5,
		{'A', 'C'}: -1,
	})
	once, err := Normalize(m, -2)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	twice, err := Normalize(once, -2)
	if err != nil {
		t.Fatalf("Normalize twice: %v", err)
	}
	for k, v := range once.scores {
		if v2, ok := twice.scores[k]; !ok || v2 != v {
			t.Fatalf("normalized matrix changed under a second pass at %v: %v != %v", k, v, v2)
		}
	}
	if len(once.scores) != len(twice.scores) {
		t.Fatalf("second Normalize pass changed entry count: %d != %d",
			len(once.scores), len(twice.scores))
	}
}

func TestNormalizeDetectsContradiction(t *testing.T) {
	m := NewSubstMatrix(map[[2]byte]float64{
		{'A', 'C'}: -1,
		{'C', 'A'}: -2,
	})
	if _, err := Normalize(m, -2); err == nil {
		t.Fatalf("Normalize: expected IncompatibleMatrixError, got nil")
	}
}

func TestPreservesExistingGapEntry(t *testing.T) {
	m := NewSubstMatrix(map[[2]byte]float64{
		{'A', 'A'}:   5,
		{'A', '-'}: -9,
	})
	norm, err := Normalize(m, -2)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if v, _ := norm.GapCost('A'); v != -9 {
		t.Fatalf("GapCost('A') = %v, want -9 (explicit entry must not be overwritten)", v)
	}
}
