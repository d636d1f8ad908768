package store

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		seq  string
		want string
	}{
		{"GIGAVLKVLTTGLPALIS", "GIGAVLKVLTTGLPALIS"},
		{"gigavl kvltt\n", "GIGAVLKVLTT"},
		{"KLAK-LAK*", "KLAKLAK"},
		{"12 KLAK", "KLAK"},
	}
	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			if got := Clean(tt.seq); got != tt.want {
				t.Errorf("Clean() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntry_IDs(t *testing.T) {
	e := Entry{Key: "P01501, P68405,,Q9XYZ1"}

	if want := []string{"P01501", "P68405", "Q9XYZ1"}; !reflect.DeepEqual(e.IDs(), want) {
		t.Errorf("Entry.IDs() = %v, want %v", e.IDs(), want)
	}
	if e.ID() != "P01501" {
		t.Errorf("Entry.ID() = %v, want P01501", e.ID())
	}
	if (Entry{}).ID() != "" {
		t.Errorf("Entry.ID() of an empty key = %v", (Entry{}).ID())
	}
}

func TestTable_Entries(t *testing.T) {
	table, err := newTable([][]string{
		{"Entry", "Sequence", "Length", "Organism"},
		{"P01501", "gigavlkvlttglpalisw ikrkrqq", "26", "Apis mellifera"},
		{"P68405,P68406", "KLAKLAKKLAKLAK", ""},
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := table.Entries("Entry", "Sequence", "Length")
	if err != nil {
		t.Fatal(err)
	}

	want := []Entry{
		{Row: 0, Key: "P01501", Seq: "GIGAVLKVLTTGLPALISWIKRKRQQ", Length: 26},
		{Row: 1, Key: "P68405,P68406", Seq: "KLAKLAKKLAKLAK", Length: 14},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Table.Entries() = %v, want %v", got, want)
	}

	if _, err = table.Entries("Accession", "Sequence", "Length"); err == nil {
		t.Error("Table.Entries() with a missing key column returned no error")
	}

	table.Rows[0][2] = "twenty"
	if _, err = table.Entries("Entry", "Sequence", "Length"); err == nil {
		t.Error("Table.Entries() with an invalid length returned no error")
	}
}

func Test_newTable(t *testing.T) {
	tests := []struct {
		name    string
		records [][]string
		want    *Table
		wantErr bool
	}{
		{
			"short rows padded",
			[][]string{{"Entry", "Sequence"}, {"P01501"}},
			&Table{Header: []string{"Entry", "Sequence"}, Rows: [][]string{{"P01501", ""}}},
			false,
		},
		{
			"empty trailing cells dropped",
			[][]string{{"Entry", "Sequence"}, {"P01501", "KLAK", "", " "}},
			&Table{Header: []string{"Entry", "Sequence"}, Rows: [][]string{{"P01501", "KLAK"}}},
			false,
		},
		{
			"cells past the header",
			[][]string{{"Entry", "Sequence"}, {"P01501", "KLAK", "Apis mellifera"}},
			nil,
			true,
		},
		{
			"no header",
			nil,
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTable(tt.records)
			if (err != nil) != tt.wantErr {
				t.Fatalf("newTable() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("newTable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTable_AddColumn(t *testing.T) {
	table := &Table{
		Header: []string{"Entry"},
		Rows:   [][]string{{"P01501"}, {"P68405"}},
	}

	if err := table.AddColumn("Score", []string{"1", "2"}); err != nil {
		t.Fatal(err)
	}
	if err := table.AddColumn("Score", []string{"3", "4"}); err != nil {
		t.Fatal(err)
	}

	want := &Table{
		Header: []string{"Entry", "Score"},
		Rows:   [][]string{{"P01501", "3"}, {"P68405", "4"}},
	}
	if !reflect.DeepEqual(table, want) {
		t.Errorf("Table.AddColumn() = %v, want %v", table, want)
	}

	if err := table.AddColumn("Short", []string{"1"}); err == nil {
		t.Error("Table.AddColumn() with too few values returned no error")
	}
}

func TestReadWrite(t *testing.T) {
	table := &Table{
		Header: []string{"Entry", "Sequence", "Helix fragments (Jpred)", "Helix percentage (Jpred)"},
		Rows: [][]string{
			{"P01501", "GIGAVLKVLTTGLPALISWIKRKRQQ", "[(2, 9), (12, 20)]", "57.5"},
			{"P68405,P68406", "KLAKLAKKLAKLAK", "", ""},
		},
	}

	for _, name := range []string{"table.csv", "table.tsv", "table.xlsx"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := Write(path, table); err != nil {
				t.Fatal(err)
			}

			got, err := Read(path)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, table) {
				t.Errorf("Read(Write()) = %v, want %v", got, table)
			}
		})
	}

	if err := Write(filepath.Join(t.TempDir(), "table.fa"), table); err == nil {
		t.Error("Write() as FASTA returned no error")
	}
}

func TestRead_FASTA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peptides.fasta")
	fa := ">P01501 Melittin\nGIGAVLKVLTTGLPAL\nISWIKRKRQQ\n>P68405\nKLAKLAK\n"
	if err := os.WriteFile(path, []byte(fa), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}

	want := &Table{
		Header: []string{EntryColumn, SequenceColumn, LengthColumn},
		Rows: [][]string{
			{"P01501", "GIGAVLKVLTTGLPALISWIKRKRQQ", "26"},
			{"P68405", "KLAKLAK", "7"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read() = %v, want %v", got, want)
	}

	if _, err = parseFASTA(strings.NewReader("")); err == nil {
		t.Error("parseFASTA() of an empty file returned no error")
	}
}
