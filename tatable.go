package treeseqalign

// noPartner is the sentinel partner index for a T-node that closes the
// outermost scope (no enclosing A).
const noPartner = -1

// taTable is the T->A association table for one sequence: for each T-node
// index i, partner[i] is the index of the matching A-node (or noPartner),
// and subtreeGapCost[i] is the total gap cost of every residue after the
// opening A up to and including the T at i itself; the opening A is excluded
// (its treatment is decided at DP-fill time).
// Indices are residue indices (not DP-matrix indices); non-T positions hold
// zero values and are never read.
type taTable struct {
	partner        []int
	subtreeGapCost []float64
}

// buildTATable performs the single left-to-right scan that associates each
// T-node with its enclosing A-node and totals the gap cost of its subtree.
func buildTATable(s *Sequence, nt NodeTypes, sm *SubstMatrix) (*taTable, error) {
	n := len(s.Residues)
	t := &taTable{
		partner:        make([]int, n),
		subtreeGapCost: make([]float64, n),
	}

	aStack := []int{noPartner}
	costStack := []float64{0}

	for k := 0; k < n; k++ {
		if len(costStack) == 0 {
			// An earlier T already popped the outermost (sentinel) scope.
			return nil, &MalformedTreeError{Sequence: s.Name, Index: k}
		}
		r := s.Residues[k]
		gc := sm.gapCostMust(r)
		costStack[len(costStack)-1] += gc

		typ, _ := nt.Classify(r)
		switch typ {
		case NodeA:
			aStack = append(aStack, k)
			costStack = append(costStack, 0)
		case NodeT:
			if len(aStack) == 0 {
				return nil, &MalformedTreeError{Sequence: s.Name, Index: k}
			}
			a := aStack[len(aStack)-1]
			aStack = aStack[:len(aStack)-1]
			c := costStack[len(costStack)-1]
			costStack = costStack[:len(costStack)-1]

			t.partner[k] = a
			t.subtreeGapCost[k] = c
			if len(costStack) > 0 {
				costStack[len(costStack)-1] += c
			}
		case NodeC:
			// no structural action
		}
	}

	if len(aStack) != 1 || aStack[0] != noPartner {
		return nil, &MalformedTreeError{Sequence: s.Name, Index: n}
	}
	return t, nil
}
