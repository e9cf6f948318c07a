// Package scoreflavor computes post-hoc statistics over a finished
// treeseqalign.Result: alignment-quality measures derived from a raw
// score and gap count, rather than raw score alone.
package scoreflavor

import "github.com/tgillet1/treeseqalign"

// Raw returns the score exactly as Align produced it.
func Raw(r treeseqalign.Result) float64 {
	return r.Score
}

// GapCount returns the total number of gap columns across both aligned
// strings.
func GapCount(r treeseqalign.Result) int {
	count := 0
	for _, b := range r.A1 {
		if b == '-' {
			count++
		}
	}
	for _, b := range r.A2 {
		if b == '-' {
			count++
		}
	}
	return count
}

// ExcessGap returns the gap columns beyond the minimum any alignment of
// sequences of length l1 and l2 must contain (|l1-l2| on the shorter
// string).
func ExcessGap(r treeseqalign.Result, l1, l2 int) int {
	minRequired := l1 - l2
	if minRequired < 0 {
		minRequired = -minRequired
	}
	excess := GapCount(r) - minRequired
	if excess < 0 {
		return 0
	}
	return excess
}

// LengthNormalized returns the raw score divided by the longer of the two
// original (pre-alignment) sequence lengths.
func LengthNormalized(r treeseqalign.Result, l1, l2 int) float64 {
	longer := l1
	if l2 > longer {
		longer = l2
	}
	if longer == 0 {
		return 0
	}
	return r.Score / float64(longer)
}
