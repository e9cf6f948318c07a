package treeseqalign

import "math"

// direction records which predecessor realised a cell's best score.
type direction int8

const (
	dirDiag direction = iota
	dirLeft
	dirUp
	dirNone // traceback-only: "no forced direction"
)

// gapCell is one entry of the L or U auxiliary matrix: the score this cell
// would contribute were its successor to extend a gap run through it, and
// whether choosing that direction at the successor forces this cell's
// direction to also be that gap direction. valid=false models the "no prior
// gap" sentinel: it is the zero value, so the row-0 L cells, the column-0 U
// cells and cells whose own node type forbids gapping need no explicit
// initialisation.
type gapCell struct {
	score    float64
	extended bool
	valid    bool
}

// dpMatrices holds the score, direction and gap-state matrices, laid out as
// flat, row-major slices over (n1+1) x (n2+1) cells.
type dpMatrices struct {
	n1, n2 int
	cols   int

	s           []float64
	d           []direction
	l, u        []gapCell
	predI, predJ []int
}

func newDPMatrices(n1, n2 int) *dpMatrices {
	cols := n2 + 1
	size := (n1 + 1) * cols
	return &dpMatrices{
		n1: n1, n2: n2, cols: cols,
		s:     make([]float64, size),
		d:     make([]direction, size),
		l:     make([]gapCell, size),
		u:     make([]gapCell, size),
		predI: make([]int, size),
		predJ: make([]int, size),
	}
}

func (m *dpMatrices) idx(i, j int) int { return i*m.cols + j }

// openExtend decides whether the gap move landing on predecessor (pi,pj)
// opens a new gap run or extends the one already recorded in gmat. Writing
// the result into the *current* cell's gapCell is the caller's
// responsibility; openExtend only reads the predecessor's.
func openExtend(m *dpMatrices, pi, pj int, cost float64, dir direction, gapOpen float64, gmat []gapCell) (score float64, extended bool) {
	pidx := m.idx(pi, pj)
	g := gmat[pidx]

	if !g.valid {
		return m.s[pidx] + cost + gapOpen, false
	}
	if m.d[pidx] != dir {
		openScore := m.s[pidx] + cost + gapOpen
		extendScore := g.score + cost
		if openScore >= extendScore {
			return openScore, false
		}
		return extendScore, true
	}
	return m.s[pidx] + cost, true
}

// calcGapLeft computes the LEFT candidate (gap in s2, advancing s1) for cell
// (i,j) and records it into m.l[i,j].
func calcGapLeft(m *dpMatrices, i, j int, s1, s2 []byte, ta1 *taTable, nt NodeTypes, sm *SubstMatrix, costs Costs) (score float64, predI, predJ int, ok bool) {
	idx := m.idx(i, j)
	typ, _ := nt.Classify(s1[i-1])

	switch typ {
	case NodeA:
		m.l[idx] = gapCell{}
		return 0, 0, 0, false

	case NodeC:
		cost := sm.gapCostMust(s1[i-1])
		pi, pj := i-1, j
		sc, ext := openExtend(m, pi, pj, cost, dirLeft, costs.GapOpen, m.l)
		m.l[idx] = gapCell{score: sc, extended: ext, valid: true}
		return sc, pi, pj, true

	default: // NodeT
		a := ta1.partner[i-1]
		if a == noPartner {
			a = 0
		}
		cMajor := ta1.subtreeGapCost[i-1]
		cStart := sm.gapCostMust(s1[a])

		gapAllScore, ext := openExtend(m, a, j, cMajor+cStart, dirLeft, costs.GapOpen, m.l)

		useAC := false
		var acScore float64
		if ta1.partner[i-1] != noPartner {
			if otherType, _ := nt.Classify(s2[j-1]); otherType == NodeC {
				acScore = m.s[m.idx(a, j-1)] + cMajor + sm.scoreMust(s1[a], s2[j-1]) + costs.GapOpen
				if acScore >= gapAllScore {
					useAC = true
				}
			}
		}

		var sc float64
		var ext2 bool
		if useAC {
			sc, predI, predJ, ext2 = acScore, a, j-1, false
		} else {
			sc, predI, predJ, ext2 = gapAllScore, a, j, ext
		}
		m.l[idx] = gapCell{score: sc, extended: ext2, valid: true}
		return sc, predI, predJ, true
	}
}

// calcGapUp is the mirror of calcGapLeft for the UP candidate (gap in s1,
// advancing s2), using s2's T<->A table.
func calcGapUp(m *dpMatrices, i, j int, s1, s2 []byte, ta2 *taTable, nt NodeTypes, sm *SubstMatrix, costs Costs) (score float64, predI, predJ int, ok bool) {
	idx := m.idx(i, j)
	typ, _ := nt.Classify(s2[j-1])

	switch typ {
	case NodeA:
		m.u[idx] = gapCell{}
		return 0, 0, 0, false

	case NodeC:
		cost := sm.gapCostMust(s2[j-1])
		pi, pj := i, j-1
		sc, ext := openExtend(m, pi, pj, cost, dirUp, costs.GapOpen, m.u)
		m.u[idx] = gapCell{score: sc, extended: ext, valid: true}
		return sc, pi, pj, true

	default: // NodeT
		b := ta2.partner[j-1]
		if b == noPartner {
			b = 0
		}
		cMajor := ta2.subtreeGapCost[j-1]
		cStart := sm.gapCostMust(s2[b])

		gapAllScore, ext := openExtend(m, i, b, cMajor+cStart, dirUp, costs.GapOpen, m.u)

		useAC := false
		var acScore float64
		if ta2.partner[j-1] != noPartner {
			if otherType, _ := nt.Classify(s1[i-1]); otherType == NodeC {
				acScore = m.s[m.idx(i-1, b)] + cMajor + sm.scoreMust(s1[i-1], s2[b]) + costs.GapOpen
				if acScore >= gapAllScore {
					useAC = true
				}
			}
		}

		var sc float64
		var ext2 bool
		if useAC {
			sc, predI, predJ, ext2 = acScore, i-1, b, false
		} else {
			sc, predI, predJ, ext2 = gapAllScore, i, b, ext
		}
		m.u[idx] = gapCell{score: sc, extended: ext2, valid: true}
		return sc, predI, predJ, true
	}
}

// fill populates S, D, L and U in row-major order.
func fill(s1, s2 *Sequence, costs Costs, sm *SubstMatrix, nt NodeTypes, ta1, ta2 *taTable) *dpMatrices {
	n1, n2 := len(s1.Residues), len(s2.Residues)
	m := newDPMatrices(n1, n2)

	// The border represents aligning a prefix of one sequence against nothing:
	// a single maximal gap run, so it is one gapOpen plus each residue's own
	// gap-extend cost from the substitution matrix, not the generic costs.Gap
	// rate (which only serves Normalize's default-filling, see align.go).
	acc := 0.0
	for i := 1; i <= n1; i++ {
		acc += sm.gapCostMust(s1.Residues[i-1])
		idx := m.idx(i, 0)
		m.s[idx] = acc + costs.GapOpen
		m.d[idx] = dirLeft
		m.predI[idx], m.predJ[idx] = i-1, 0
		m.l[idx] = gapCell{score: m.s[idx], extended: i > 1, valid: true}
	}
	acc = 0.0
	for j := 1; j <= n2; j++ {
		acc += sm.gapCostMust(s2.Residues[j-1])
		idx := m.idx(0, j)
		m.s[idx] = acc + costs.GapOpen
		m.d[idx] = dirUp
		m.predI[idx], m.predJ[idx] = 0, j-1
		m.u[idx] = gapCell{score: m.s[idx], extended: j > 1, valid: true}
	}

	for i := 1; i <= n1; i++ {
		for j := 1; j <= n2; j++ {
			idx := m.idx(i, j)

			t1, _ := nt.Classify(s1.Residues[i-1])
			t2, _ := nt.Classify(s2.Residues[j-1])

			diagOK := !diagonalForbidden(t1, t2)
			var diagScore float64
			if diagOK {
				diagScore = m.s[m.idx(i-1, j-1)] + sm.scoreMust(s1.Residues[i-1], s2.Residues[j-1])
			} else {
				diagScore = math.Inf(-1)
			}

			leftScore, leftI, leftJ, leftOK := calcGapLeft(m, i, j, s1.Residues, s2.Residues, ta1, nt, sm, costs)
			upScore, upI, upJ, upOK := calcGapUp(m, i, j, s1.Residues, s2.Residues, ta2, nt, sm, costs)

			switch {
			case diagOK && (!leftOK || diagScore >= leftScore) && (!upOK || diagScore >= upScore):
				m.s[idx] = diagScore
				m.d[idx] = dirDiag
				m.predI[idx], m.predJ[idx] = i-1, j-1
			case leftOK && (!upOK || leftScore >= upScore):
				m.s[idx] = leftScore
				m.d[idx] = dirLeft
				m.predI[idx], m.predJ[idx] = leftI, leftJ
			default:
				m.s[idx] = upScore
				m.d[idx] = dirUp
				m.predI[idx], m.predJ[idx] = upI, upJ
			}
		}
	}
	return m
}
