package fastaio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tgillet1/treeseqalign"
)

// WriteAlignment writes one tab-separated alignment record: target name,
// query name, aligned target string, aligned query string.
func WriteAlignment(w io.Writer, targetName, queryName string, r treeseqalign.Result) error {
	bw := bufio.NewWriter(w)
	_, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\n",
		targetName, queryName, string(r.A1), string(r.A2))
	if err != nil {
		return err
	}
	return bw.Flush()
}

// WriteScoreMatrix writes a tab-separated score matrix: the first row holds
// query names with a leading empty cell, then one row per target with its
// name followed by its score against each query, in the order both name
// slices are given. scores is indexed [targetIdx][queryIdx].
func WriteScoreMatrix(w io.Writer, targetNames, queryNames []string, scores [][]float64) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("\t"); err != nil {
		return err
	}
	for i, name := range queryNames {
		if i > 0 {
			if _, err := bw.WriteString("\t"); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(name); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}

	for i, target := range targetNames {
		if _, err := fmt.Fprintf(bw, "%s", target); err != nil {
			return err
		}
		for _, score := range scores[i] {
			if _, err := fmt.Fprintf(bw, "\t%v", score); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
