package treeseqalign

// traceback walks D (and L/U's extended flags) from (n1,n2) back to (0,0),
// building the two aligned strings. A LEFT or UP move at a T-node expands
// the whole matched-or-gapped subtree in one step, using the predecessor
// coordinates recorded at fill time regardless of whether the current step
// is itself a forced continuation of an extended gap run.
func traceback(m *dpMatrices, s1, s2 *Sequence) (a1, a2 []byte) {
	i, j := m.n1, m.n2

	forced := dirNone

	for i > 0 || j > 0 {
		if i == 0 {
			a1 = append(a1, gapSymbol)
			a2 = append(a2, s2.Residues[j-1])
			j--
			continue
		}
		if j == 0 {
			a1 = append(a1, s1.Residues[i-1])
			a2 = append(a2, gapSymbol)
			i--
			continue
		}

		idx := m.idx(i, j)
		dir := m.d[idx]
		if forced != dirNone {
			dir = forced
		}
		forced = dirNone

		switch dir {
		case dirDiag:
			a1 = append(a1, s1.Residues[i-1])
			a2 = append(a2, s2.Residues[j-1])
			i, j = m.predI[idx], m.predJ[idx]

		case dirLeft:
			pi, pj := m.predI[idx], m.predJ[idx]
			if m.l[idx].extended {
				forced = dirLeft
			}
			// Gap the whole span s1[pi:i] against column j first; an
			// AC-match then turns the last-appended pair (s1[pi], the
			// subtree's A) from a gap into a diagonal match.
			for step := i; step > pi; step-- {
				a1 = append(a1, s1.Residues[step-1])
				a2 = append(a2, gapSymbol)
			}
			if pj < j {
				a2[len(a2)-1] = s2.Residues[j-1]
			}
			i, j = pi, pj

		default: // dirUp
			pi, pj := m.predI[idx], m.predJ[idx]
			if m.u[idx].extended {
				forced = dirUp
			}
			for step := j; step > pj; step-- {
				a1 = append(a1, gapSymbol)
				a2 = append(a2, s2.Residues[step-1])
			}
			if pi < i {
				a1[len(a1)-1] = s1.Residues[i-1]
			}
			i, j = pi, pj
		}
	}

	reverseBytes(a1)
	reverseBytes(a2)
	return a1, a2
}

func reverseBytes(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}
