// Package store reads and writes the table of peptide entries that Jpred
// results are added to.
package store

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Table is a header row and the rows beneath it. Every row has one cell
// per header column.
type Table struct {
	Header []string
	Rows   [][]string
}

// Entry is a single peptide/protein in the table.
type Entry struct {
	// Row is the index of the entry's row in Table.Rows
	Row int `json:"row"`

	// Key is the entry's identifier cell. It can be a comma separated
	// list of identifiers when a row merges several database records
	Key string `json:"key"`

	// Seq is the cleaned amino acid sequence
	Seq string `json:"seq"`

	// Length is the length of the original sequence
	Length int `json:"length"`
}

// IDs splits the entry's key into its identifiers.
func (e Entry) IDs() (ids []string) {
	for _, id := range strings.Split(e.Key, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// ID is the entry's first identifier.
func (e Entry) ID() string {
	if ids := e.IDs(); len(ids) > 0 {
		return ids[0]
	}
	return ""
}

// unwantedChars is anything that isn't an amino acid letter
var unwantedChars = regexp.MustCompile(`[^A-Z]`)

// Clean upper-cases seq and removes whitespace, digits, gaps, and stop characters.
func Clean(seq string) string {
	return unwantedChars.ReplaceAllString(strings.ToUpper(seq), "")
}

// Read loads a table from path. The format is chosen by file extension:
// .xlsx, .csv, .tsv, or FASTA (.fa, .fasta, .faa).
func Read(path string) (*Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return readXLSX(path)
	case ".csv":
		return readCSV(path, ',')
	case ".tsv":
		return readCSV(path, '\t')
	case ".fa", ".fasta", ".faa":
		return readFASTA(path)
	default:
		return nil, fmt.Errorf("unrecognized table format %q: %s", ext, path)
	}
}

// Write saves a table to path. The format is chosen by file extension:
// .xlsx, .csv or .tsv.
func Write(path string, t *Table) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return writeXLSX(path, t)
	case ".csv":
		return writeCSV(path, ',', t)
	case ".tsv":
		return writeCSV(path, '\t', t)
	default:
		return fmt.Errorf("unable to write a table as %q: %s", ext, path)
	}
}

// newTable builds a table from raw records, the first being the header.
// Short rows are padded with empty cells. Empty cells past the header are
// dropped, anything else there is an error.
func newTable(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("table has no header row")
	}

	t := &Table{Header: records[0]}
	for r, record := range records[1:] {
		for i := len(t.Header); i < len(record); i++ {
			if strings.TrimSpace(record[i]) != "" {
				return nil, fmt.Errorf("row %d has %d cells but the header has %d", r+2, len(record), len(t.Header))
			}
		}

		row := make([]string, len(t.Header))
		copy(row, record)
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Column returns the index of the named column, or -1.
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// AddColumn appends a column to the table, one value per row. A column
// of the same name is replaced.
func (t *Table) AddColumn(name string, values []string) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("column %s has %d values for %d rows", name, len(values), len(t.Rows))
	}

	if i := t.Column(name); i >= 0 {
		for r, row := range t.Rows {
			row[i] = values[r]
		}
		return nil
	}

	t.Header = append(t.Header, name)
	for r := range t.Rows {
		t.Rows[r] = append(t.Rows[r], values[r])
	}
	return nil
}

// Entries reads the entries from the table. key and sequence name the
// identifier and sequence columns. length names an optional column with
// sequence lengths; the length of the cleaned sequence is used otherwise.
func (t *Table) Entries(key, sequence, length string) ([]Entry, error) {
	keyCol, seqCol, lenCol := t.Column(key), t.Column(sequence), t.Column(length)
	if keyCol < 0 {
		return nil, fmt.Errorf("no %q column in table", key)
	}
	if seqCol < 0 {
		return nil, fmt.Errorf("no %q column in table", sequence)
	}

	entries := make([]Entry, 0, len(t.Rows))
	for r, row := range t.Rows {
		e := Entry{
			Row: r,
			Key: strings.TrimSpace(row[keyCol]),
			Seq: Clean(row[seqCol]),
		}
		e.Length = len(e.Seq)

		if lenCol >= 0 && strings.TrimSpace(row[lenCol]) != "" {
			l, err := strconv.ParseFloat(strings.TrimSpace(row[lenCol]), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d (%s) has an invalid %s: %q", r+2, e.Key, length, row[lenCol])
			}
			e.Length = int(l)
		}

		entries = append(entries, e)
	}
	return entries, nil
}
