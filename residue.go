// Package treeseqalign implements a global pairwise sequence aligner for
// typed tree-sequences: a Needleman-Wunsch variant in which every residue
// carries a node type (A, C or T) and the alignment cost model is
// constrained so that the two strings, read as linearized labelled trees,
// may only align in tree-consistent ways.
package treeseqalign

import "fmt"

// NodeType classifies a single residue as the opening node of a subtree (A),
// an interior node (C), or the closing node of a subtree (T).
type NodeType byte

const (
	NodeA NodeType = 'A'
	NodeC NodeType = 'C'
	NodeT NodeType = 'T'
)

func (t NodeType) String() string {
	switch t {
	case NodeA:
		return "A"
	case NodeC:
		return "C"
	case NodeT:
		return "T"
	default:
		return fmt.Sprintf("NodeType(%q)", byte(t))
	}
}

// NodeTypes is the residue-to-node-type classification used by the aligner.
// The zero value classifies nothing; build one with NewNodeTypes or use
// DefaultNodeTypes.
type NodeTypes struct {
	byResidue map[byte]NodeType
}

// NewNodeTypes builds a NodeTypes value from a tag -> residue-string mapping,
// e.g. {NodeA: "A", NodeC: "BRPD", NodeT: "T"}. The same residue may not be
// assigned to two different tags.
func NewNodeTypes(tags map[NodeType]string) (NodeTypes, error) {
	nt := NodeTypes{byResidue: make(map[byte]NodeType)}
	for tag, residues := range tags {
		switch tag {
		case NodeA, NodeC, NodeT:
		default:
			return NodeTypes{}, fmt.Errorf("treeseqalign: unknown node-type tag %q", tag)
		}
		for i := 0; i < len(residues); i++ {
			r := residues[i]
			if existing, ok := nt.byResidue[r]; ok && existing != tag {
				return NodeTypes{}, fmt.Errorf(
					"treeseqalign: residue %q assigned to both %q and %q", r, existing, tag)
			}
			nt.byResidue[r] = tag
		}
	}
	return nt, nil
}

// DefaultNodeTypes returns the default classification {A:"A", C:"C", T:"T"}.
func DefaultNodeTypes() NodeTypes {
	nt, err := NewNodeTypes(map[NodeType]string{
		NodeA: "A",
		NodeC: "C",
		NodeT: "T",
	})
	if err != nil {
		panic(err) // unreachable: the default mapping is always well-formed
	}
	return nt
}

// Classify returns the node type of residue r and whether it is classified
// at all.
func (nt NodeTypes) Classify(r byte) (NodeType, bool) {
	t, ok := nt.byResidue[r]
	return t, ok
}

// Sequence is a named, ordered sequence of residues.
type Sequence struct {
	Name     string
	Residues []byte
}

// NewSequence returns a Sequence. Residues are used as given; callers that
// want upper-casing or stripping of stop-codon markers should do so before
// constructing the Sequence.
func NewSequence(name string, residues []byte) *Sequence {
	return &Sequence{Name: name, Residues: residues}
}

// Len returns the number of residues in the sequence.
func (s *Sequence) Len() int {
	return len(s.Residues)
}

// ValidateSequences checks that every residue of s1 and s2 is classified by
// nt and has a gap-cost entry in sm, and that every type-compatible residue
// pair across s1 and s2 has a substitution score in sm. It does not check
// A/T nesting; buildTATable (tatable.go) does that, and Align runs both
// checks before allocating any DP matrix.
func ValidateSequences(s1, s2 *Sequence, nt NodeTypes, sm *SubstMatrix) error {
	for _, s := range [2]*Sequence{s1, s2} {
		for i, r := range s.Residues {
			if _, ok := nt.Classify(r); !ok {
				return &UnknownResidueError{Sequence: s.Name, Residue: r, Index: i}
			}
			if _, ok := sm.GapCost(r); !ok {
				return &UnknownResidueError{Sequence: s.Name, Residue: r, Index: i}
			}
		}
	}

	alphabet1 := distinctResidues(s1.Residues)
	alphabet2 := distinctResidues(s2.Residues)
	for x := range alphabet1 {
		tx, _ := nt.Classify(x)
		for y := range alphabet2 {
			ty, _ := nt.Classify(y)
			if !crossScoreNeeded(tx, ty) {
				continue
			}
			if _, ok := sm.Score(x, y); !ok {
				return &IncompatibleMatrixError{
					A: x, B: y,
					ScoreAB: 0, ScoreBA: 0,
				}
			}
		}
	}
	return nil
}

func distinctResidues(residues []byte) map[byte]struct{} {
	set := make(map[byte]struct{})
	for _, r := range residues {
		set[r] = struct{}{}
	}
	return set
}

func diagonalForbidden(t1, t2 NodeType) bool {
	if (t1 == NodeA && t2 == NodeC) || (t1 == NodeC && t2 == NodeA) {
		return true
	}
	return (t1 == NodeT) != (t2 == NodeT)
}

// crossScoreNeeded reports whether the substitution matrix must carry a
// score for a (t1,t2) residue pair: every pair is used somewhere except a
// T paired with a non-T, which diagonalForbidden excludes from the main
// recurrence and which calc_gap's AC-match sub-case never produces either
// (it only ever scores an A against a C).
func crossScoreNeeded(t1, t2 NodeType) bool {
	return (t1 == NodeT) == (t2 == NodeT)
}
