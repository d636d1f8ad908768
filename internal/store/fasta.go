package store

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
)

// FASTA files are read into a table with these columns
const (
	EntryColumn    = "Entry"
	SequenceColumn = "Sequence"
	LengthColumn   = "Length"
)

// readFASTA reads a multi-FASTA file into a table with a row per sequence.
func readFASTA(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FASTA file: %w", err)
	}
	defer file.Close()

	return parseFASTA(file)
}

func parseFASTA(r io.Reader) (*Table, error) {
	t := &Table{Header: []string{EntryColumn, SequenceColumn, LengthColumn}}

	reader := fasta.NewReader(r, linear.NewSeq("", nil, alphabet.Protein))
	for {
		s, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to parse FASTA: %w", err)
		}

		residues := letters(s)
		t.Rows = append(t.Rows, []string{s.Name(), residues, strconv.Itoa(len(Clean(residues)))})
	}

	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("no sequences in FASTA file")
	}
	return t, nil
}

// letters returns a sequence's residues as a string.
func letters(s seq.Sequence) string {
	b := make([]byte, s.Len())
	for i := range b {
		b[i] = byte(s.At(i).L)
	}
	return string(b)
}
