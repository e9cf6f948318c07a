package treeseqalign

// Result is the outcome of aligning two tree-sequences: the optimal score
// and the two sequences padded with gap symbols to a common length.
type Result struct {
	Score float64
	A1    []byte
	A2    []byte
}

// Align computes the optimal tree-consistent global alignment of s1 and s2
// under costs, submat and nodeTypes. It validates its inputs, normalizes
// submat (see Normalize), builds each sequence's T<->A association table,
// fills the DP matrices and tracebacks the optimal path.
func Align(s1, s2 *Sequence, costs Costs, submat *SubstMatrix, nodeTypes NodeTypes) (Result, error) {
	if err := costs.Validate(); err != nil {
		return Result{}, err
	}

	normSubmat, err := Normalize(submat, costs.Gap)
	if err != nil {
		return Result{}, err
	}

	if err := ValidateSequences(s1, s2, nodeTypes, normSubmat); err != nil {
		return Result{}, err
	}

	ta1, err := buildTATable(s1, nodeTypes, normSubmat)
	if err != nil {
		return Result{}, err
	}
	ta2, err := buildTATable(s2, nodeTypes, normSubmat)
	if err != nil {
		return Result{}, err
	}

	m := fill(s1, s2, costs, normSubmat, nodeTypes, ta1, ta2)
	a1, a2 := traceback(m, s1, s2)

	return Result{
		Score: m.s[m.idx(m.n1, m.n2)],
		A1:    a1,
		A2:    a2,
	}, nil
}
