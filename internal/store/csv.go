package store

import (
	"encoding/csv"
	"fmt"
	"os"
)

func readCSV(path string, comma rune) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return newTable(records)
}

func writeCSV(path string, comma rune, t *Table) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	w.Comma = comma
	if err = w.Write(t.Header); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = w.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
