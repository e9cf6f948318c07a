// Package fastaio streams treeseqalign.Sequence values from FASTA files
// (transparently decompressing .gz) and writes alignment and score-matrix
// output: a goroutine feeding a buffered channel on read, tabular output
// writers on write.
package fastaio

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/TuftsBCB/io/fasta"
	"github.com/tgillet1/treeseqalign"
)

// Read is the value sent over the channel returned by ReadSeqs: either a
// freshly parsed Sequence, or the error that ended the stream.
type Read struct {
	Seq *treeseqalign.Sequence
	Err error
}

// ReadSeqs opens fileName (transparently gunzipping if it ends in ".gz"),
// and returns a channel that every parsed sequence (or a single terminal
// error) is sent to. The channel is closed when the file is exhausted.
func ReadSeqs(fileName string) (chan Read, error) {
	var f io.Reader
	var err error

	f, err = os.Open(fileName)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(fileName, ".gz") {
		f, err = gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
	}

	reader := fasta.NewReader(f)
	out := make(chan Read, 200)
	go func() {
		defer close(out)
		for {
			seq, err := reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				out <- Read{Err: err}
				return
			}
			out <- Read{Seq: treeseqalign.NewSequence(seq.Name, seq.Residues)}
		}
	}()
	return out, nil
}

// ReadAll drains ReadSeqs into a slice, stopping at the first error.
func ReadAll(fileName string) ([]*treeseqalign.Sequence, error) {
	ch, err := ReadSeqs(fileName)
	if err != nil {
		return nil, err
	}
	var seqs []*treeseqalign.Sequence
	for r := range ch {
		if r.Err != nil {
			return nil, r.Err
		}
		seqs = append(seqs, r.Seq)
	}
	return seqs, nil
}
