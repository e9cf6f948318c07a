// Package submatfile parses a three-column substitution-matrix file format:
// encoding/csv with a custom delimiter and comment rune rather than a
// hand-rolled line scanner.
package submatfile

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/tgillet1/treeseqalign"
)

// Parse reads "residueA<TAB>residueB<TAB>score" lines, stopping at the
// first blank line (or EOF), and builds a treeseqalign.SubstMatrix from
// them. '#'-prefixed comments before the blank line are skipped. Every
// non-blank line must have exactly three fields.
func Parse(r io.Reader) (*treeseqalign.SubstMatrix, error) {
	body, err := readUntilBlankLine(r)
	if err != nil {
		return nil, err
	}

	csvReader := csv.NewReader(strings.NewReader(body))
	csvReader.Comma = '\t'
	csvReader.Comment = '#'
	csvReader.FieldsPerRecord = 3
	csvReader.TrimLeadingSpace = true

	lines, err := csvReader.ReadAll()
	if err != nil {
		return nil, err
	}

	pairs := make(map[[2]byte]float64, len(lines))
	for _, line := range lines {
		score, err := strconv.ParseFloat(line[2], 64)
		if err != nil {
			return nil, err
		}
		pairs[[2]byte{line[0][0], line[1][0]}] = score
	}
	return treeseqalign.NewSubstMatrix(pairs), nil
}

// readUntilBlankLine returns every line of r up to (not including) the
// first line that is empty after trimming whitespace, matching the
// terminate-on-blank-line convention of the file formats this package reads.
func readUntilBlankLine(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	var b strings.Builder
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String(), scanner.Err()
}
