package jpred

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Query is a single sequence to submit to Jpred.
type Query struct {
	ID  string
	Seq string
}

// WriteInput writes queries as FASTA with each sequence on a single line,
// which is what Jpred's batch mode expects.
func WriteInput(w io.Writer, queries []Query) error {
	width := 1
	for _, q := range queries {
		if len(q.Seq) > width {
			width = len(q.Seq)
		}
	}

	fw := fasta.NewWriter(w, width)
	for _, q := range queries {
		s := linear.NewSeq(q.ID, alphabet.BytesToLetters([]byte(q.Seq)), alphabet.Protein)
		if _, err := fw.Write(s); err != nil {
			return fmt.Errorf("failed to write %s to Jpred input: %w", q.ID, err)
		}
	}
	return nil
}

// CreateInput replaces the file at path with a Jpred input for queries.
func CreateInput(path string, queries []Query) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove old Jpred input: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create Jpred input: %w", err)
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	if err = WriteInput(buf, queries); err != nil {
		return err
	}
	if err = buf.Flush(); err != nil {
		return fmt.Errorf("failed to write Jpred input: %w", err)
	}
	return file.Close()
}
