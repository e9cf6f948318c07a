// Package nodetype parses the node-type classification file format: a
// small, colon-delimited key-value format, one node type per line, read
// with encoding/csv rather than a hand-rolled scanner.
package nodetype

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/tgillet1/treeseqalign"
)

// ParseNodeTypesFile reads "<tag>:<residues>" lines, one per node type,
// stopping at the first blank line (or EOF). tag must be A, C or T.
// '#'-prefixed comments before the blank line are skipped.
func ParseNodeTypesFile(r io.Reader) (treeseqalign.NodeTypes, error) {
	body, err := readUntilBlankLine(r)
	if err != nil {
		return treeseqalign.NodeTypes{}, err
	}

	csvReader := csv.NewReader(strings.NewReader(body))
	csvReader.Comma = ':'
	csvReader.Comment = '#'
	csvReader.FieldsPerRecord = 2
	csvReader.TrimLeadingSpace = true

	lines, err := csvReader.ReadAll()
	if err != nil {
		return treeseqalign.NodeTypes{}, err
	}

	tags := make(map[treeseqalign.NodeType]string, len(lines))
	for _, line := range lines {
		if len(line[0]) != 1 {
			return treeseqalign.NodeTypes{}, fmt.Errorf("nodetype: unknown node-type tag %q", line[0])
		}
		tag := treeseqalign.NodeType(line[0][0])
		tags[tag] = line[1]
	}
	return treeseqalign.NewNodeTypes(tags)
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

// Default returns the classification {A:"A", C:"C", T:"T"}, used when no
// node-types file is given.
func Default() treeseqalign.NodeTypes {
	return treeseqalign.DefaultNodeTypes()
}
