package treeseqalign

import "math"

// Costs bundles the two penalties the aligner charges for gaps: a per-residue
// extension cost and a once-per-run opening cost. Both are typically
// non-positive.
type Costs struct {
	Gap     float64
	GapOpen float64
}

// Validate returns an InvalidCostError if either field is not finite.
func (c Costs) Validate() error {
	if math.IsNaN(c.Gap) || math.IsInf(c.Gap, 0) {
		return &InvalidCostError{Field: "gap", Value: c.Gap}
	}
	if math.IsNaN(c.GapOpen) || math.IsInf(c.GapOpen, 0) {
		return &InvalidCostError{Field: "gapopen", Value: c.GapOpen}
	}
	return nil
}
