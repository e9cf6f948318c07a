package treeseqalign

// gapSymbol marks a gap position in an alignment or a substitution matrix key.
const gapSymbol byte = '-'

// SubstMatrix is a partial function (residue, residue) -> score.
type SubstMatrix struct {
	scores map[[2]byte]float64
}

// NewSubstMatrix builds a SubstMatrix from a map of residue-pair scores. The
// returned value does not alias pairs; later mutation of pairs has no effect.
func NewSubstMatrix(pairs map[[2]byte]float64) *SubstMatrix {
	scores := make(map[[2]byte]float64, len(pairs))
	for k, v := range pairs {
		scores[k] = v
	}
	return &SubstMatrix{scores: scores}
}

// Score returns M[x,y] and whether it is present.
func (m *SubstMatrix) Score(x, y byte) (float64, bool) {
	v, ok := m.scores[[2]byte{x, y}]
	return v, ok
}

// GapCost returns M[x,'-'] and whether it is present.
func (m *SubstMatrix) GapCost(x byte) (float64, bool) {
	return m.Score(x, gapSymbol)
}

// scoreMust is the internal, panic-on-miss accessor used by the T<->A table
// builder and the DP fill once ValidateSequences has confirmed every pair it will need is
// present. It exists so the inner loop can stay branch-light instead of
// threading (value, ok) through every arithmetic expression.
func (m *SubstMatrix) scoreMust(x, y byte) float64 {
	v, ok := m.Score(x, y)
	if !ok {
		panic(&IncompatibleMatrixError{A: x, B: y})
	}
	return v
}

func (m *SubstMatrix) gapCostMust(x byte) float64 {
	return m.scoreMust(x, gapSymbol)
}

// Normalize returns a new, symmetric SubstMatrix derived from m:
//
//   - (x,'-') is ensured for every residue x seen in m, defaulting to gap
//     when m does not already supply it;
//   - ('-',x) is ensured for every residue x of a two-residue pair in m,
//     likewise defaulting to gap;
//   - (y,x) is ensured to mirror (x,y) for every two-residue pair in m;
//   - ('-','-') is never produced or consulted.
//
// Normalize does not mutate m. It returns IncompatibleMatrixError if m
// already contains contradictory (x,y) and (y,x) entries.
func Normalize(m *SubstMatrix, gap float64) (*SubstMatrix, error) {
	out := make(map[[2]byte]float64, len(m.scores)*2)
	for k, v := range m.scores {
		out[k] = v
	}

	for k, v := range m.scores {
		a, b := k[0], k[1]
		switch {
		case a == gapSymbol && b == gapSymbol:
			continue
		case a == gapSymbol || b == gapSymbol:
			res := a
			if a == gapSymbol {
				res = b
			}
			gk := [2]byte{res, gapSymbol}
			if _, ok := out[gk]; !ok {
				out[gk] = v
			}
		default:
			for _, r := range [2]byte{a, b} {
				for _, gk := range [2][2]byte{{r, gapSymbol}, {gapSymbol, r}} {
					if _, ok := out[gk]; !ok {
						out[gk] = gap
					}
				}
			}
			mirror := [2]byte{b, a}
			if existing, ok := m.scores[mirror]; ok && existing != v {
				return nil, &IncompatibleMatrixError{A: a, B: b, ScoreAB: v, ScoreBA: existing}
			}
			out[mirror] = v
		}
	}
	return &SubstMatrix{scores: out}, nil
}
