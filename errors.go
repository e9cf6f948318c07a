package treeseqalign

import "fmt"

// UnknownResidueError is returned when a residue in an input sequence has no
// node-type classification or no substitution-matrix entry.
type UnknownResidueError struct {
	Sequence string
	Residue  byte
	Index    int
}

func (e *UnknownResidueError) Error() string {
	return fmt.Sprintf(
		"treeseqalign: residue %q at position %d of sequence %q is unclassified or unscored",
		e.Residue, e.Index, e.Sequence)
}

// MalformedTreeError is returned when a sequence's A/T nesting is unbalanced.
type MalformedTreeError struct {
	Sequence string
	Index    int
}

func (e *MalformedTreeError) Error() string {
	return fmt.Sprintf(
		"treeseqalign: sequence %q is not a well-formed tree-sequence (A/T nesting breaks near position %d)",
		e.Sequence, e.Index)
}

// IncompatibleMatrixError is returned when normalisation cannot complete, or
// when the facade discovers a type-compatible residue pair the substitution
// matrix does not score.
type IncompatibleMatrixError struct {
	A, B             byte
	ScoreAB, ScoreBA float64
}

func (e *IncompatibleMatrixError) Error() string {
	if e.ScoreAB != e.ScoreBA {
		return fmt.Sprintf(
			"treeseqalign: substitution matrix has contradictory entries for (%q,%q): %v vs %v",
			e.A, e.B, e.ScoreAB, e.ScoreBA)
	}
	return fmt.Sprintf(
		"treeseqalign: substitution matrix has no entry for (%q,%q)", e.A, e.B)
}

// InvalidCostError is returned when a cost value is not finite.
type InvalidCostError struct {
	Field string
	Value float64
}

func (e *InvalidCostError) Error() string {
	return fmt.Sprintf("treeseqalign: invalid cost %s=%v (must be finite)", e.Field, e.Value)
}
