// Command tsalign aligns every sequence of a target FASTA file against
// every sequence of a query FASTA file under the typed tree-sequence cost
// model, fanning pairwise alignments out across a worker pool and writing
// one alignment record per pair.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"runtime"

	"github.com/tgillet1/treeseqalign"
	"github.com/tgillet1/treeseqalign/blosum"
	"github.com/tgillet1/treeseqalign/fastaio"
	"github.com/tgillet1/treeseqalign/internal/vlog"
	"github.com/tgillet1/treeseqalign/nodetype"
	"github.com/tgillet1/treeseqalign/pool"
	"github.com/tgillet1/treeseqalign/scoreflavor"
	"github.com/tgillet1/treeseqalign/submatfile"
)

var (
	flagGap          = -1.0
	flagGapOpen      = -10.0
	flagMatrix       = "blosum62"
	flagCustomMatrix = ""
	flagNodeTypes    = ""
	flagWorkers      = runtime.NumCPU()
	flagVerbose      = false
	flagScoreMatrix  = false
	flagScoreFlavor  = "raw"
)

func init() {
	log.SetFlags(0)

	flag.Float64Var(&flagGap, "gap", flagGap,
		"The per-residue gap extension penalty.")
	flag.Float64Var(&flagGapOpen, "gapopen", flagGapOpen,
		"The penalty charged once per maximal gap run.")
	flag.StringVar(&flagMatrix, "matrix", flagMatrix,
		"The named substitution matrix to use (blosum45, blosum62, blosum80).\n"+
			"\tIgnored if -custom-matrix is set.")
	flag.StringVar(&flagCustomMatrix, "custom-matrix", flagCustomMatrix,
		"A custom substitution-matrix file (see submatfile.Parse). Overrides -matrix.")
	flag.StringVar(&flagNodeTypes, "node-types", flagNodeTypes,
		"A node-types file (see nodetype.ParseNodeTypesFile). Defaults to {A:A, C:C, T:T}.")
	flag.IntVar(&flagWorkers, "workers", flagWorkers,
		"The number of goroutines aligning pairs concurrently.")
	flag.BoolVar(&flagVerbose, "verbose", flagVerbose,
		"When set, progress is reported to stderr.")
	flag.BoolVar(&flagScoreMatrix, "score-matrix", flagScoreMatrix,
		"When set, a tab-separated score matrix is written instead of\n"+
			"\tper-pair alignment records.")
	flag.StringVar(&flagScoreFlavor, "score-flavor", flagScoreFlavor,
		"The score-matrix statistic to report: raw, gapcount, excessgap or\n"+
			"\tlengthnorm. Ignored unless -score-matrix is set.")

	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr,
		"Usage: %s [flags] target.fasta query.fasta\n", path.Base(os.Args[0]))
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	flag.Parse()
	vlog.Verbose = flagVerbose

	if flag.NArg() != 2 {
		usage()
	}
	targetFile, queryFile := flag.Arg(0), flag.Arg(1)

	if err := validateScoreFlavor(flagScoreFlavor); err != nil {
		fatalf("%s\n", err)
	}
	submat, err := loadSubstMatrix()
	if err != nil {
		fatalf("%s\n", err)
	}
	nodeTypes, err := loadNodeTypes()
	if err != nil {
		fatalf("%s\n", err)
	}
	costs := treeseqalign.Costs{Gap: flagGap, GapOpen: flagGapOpen}

	targets, err := fastaio.ReadAll(targetFile)
	if err != nil {
		fatalf("reading %s: %s\n", targetFile, err)
	}
	queries, err := fastaio.ReadAll(queryFile)
	if err != nil {
		fatalf("reading %s: %s\n", queryFile, err)
	}

	pairs := make([]pool.Pair, 0, len(targets)*len(queries))
	for _, t := range targets {
		for _, q := range queries {
			pairs = append(pairs, pool.Pair{
				S1: t, S2: q, Costs: costs, SubstMatrix: submat, NodeTypes: nodeTypes,
			})
		}
	}
	results := pool.Run(pairs, flagWorkers)
	vlog.Vprint("\n")

	if flagScoreMatrix {
		if err := writeScoreMatrix(targets, queries, results); err != nil {
			fatalf("writing score matrix: %s\n", err)
		}
		return
	}
	writeAlignments(targets, queries, results)
}

func loadSubstMatrix() (*treeseqalign.SubstMatrix, error) {
	if flagCustomMatrix != "" {
		f, err := os.Open(flagCustomMatrix)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return submatfile.Parse(f)
	}
	sm, ok := blosum.Named(flagMatrix, flagGap)
	if !ok {
		return nil, fmt.Errorf("unknown substitution matrix %q", flagMatrix)
	}
	return sm, nil
}

func loadNodeTypes() (treeseqalign.NodeTypes, error) {
	if flagNodeTypes == "" {
		return nodetype.Default(), nil
	}
	f, err := os.Open(flagNodeTypes)
	if err != nil {
		return treeseqalign.NodeTypes{}, err
	}
	defer f.Close()
	return nodetype.ParseNodeTypesFile(f)
}

func validateScoreFlavor(flavor string) error {
	switch flavor {
	case "raw", "gapcount", "excessgap", "lengthnorm":
		return nil
	default:
		return fmt.Errorf("unknown score flavor %q", flavor)
	}
}

// scoreFor reports r's score under the requested flavor; l1 and l2 are the
// unaligned lengths of the target and query sequences the result came from.
func scoreFor(flavor string, r pool.JobResult, l1, l2 int) float64 {
	switch flavor {
	case "gapcount":
		return float64(scoreflavor.GapCount(r.Result))
	case "excessgap":
		return float64(scoreflavor.ExcessGap(r.Result, l1, l2))
	case "lengthnorm":
		return scoreflavor.LengthNormalized(r.Result, l1, l2)
	default:
		return scoreflavor.Raw(r.Result)
	}
}

func writeAlignments(targets, queries []*treeseqalign.Sequence, results []pool.JobResult) {
	id := 0
	for _, t := range targets {
		for _, q := range queries {
			r := results[id]
			id++
			if r.Err != nil {
				vlog.Vprintf("skipping %s/%s: %s\n", t.Name, q.Name, r.Err)
				continue
			}
			if err := fastaio.WriteAlignment(os.Stdout, t.Name, q.Name, r.Result); err != nil {
				fatalf("writing alignment: %s\n", err)
			}
		}
	}
}

func writeScoreMatrix(targets, queries []*treeseqalign.Sequence, results []pool.JobResult) error {
	targetNames := make([]string, len(targets))
	for i, t := range targets {
		targetNames[i] = t.Name
	}
	queryNames := make([]string, len(queries))
	for i, q := range queries {
		queryNames[i] = q.Name
	}

	scores := make([][]float64, len(targets))
	id := 0
	for i, t := range targets {
		scores[i] = make([]float64, len(queries))
		for j, q := range queries {
			r := results[id]
			id++
			if r.Err == nil {
				scores[i][j] = scoreFor(flagScoreFlavor, r, t.Len(), q.Len())
			}
		}
	}
	return fastaio.WriteScoreMatrix(os.Stdout, targetNames, queryNames, scores)
}

func fatalf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
	os.Exit(1)
}
