package jpred

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteInput(t *testing.T) {
	var buf bytes.Buffer
	queries := []Query{
		{ID: "P01501", Seq: "GIGAVLKVLTTGLPALISWIKRKRQQ"},
		{ID: "P68405", Seq: "KLAKLAKKLAKLAKKLAKLAK"},
	}

	if err := WriteInput(&buf, queries); err != nil {
		t.Fatal(err)
	}

	want := ">P01501\nGIGAVLKVLTTGLPALISWIKRKRQQ\n>P68405\nKLAKLAKKLAKLAKKLAKLAK"
	if got := strings.TrimRight(buf.String(), "\n"); got != want {
		t.Errorf("WriteInput() = %q, want %q", got, want)
	}
}

func TestCreateInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Jpred_input_DBAASP.txt")
	if err := os.WriteFile(path, []byte(">old\nAAAA\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := CreateInput(path, []Query{{ID: "P01501", Seq: "GIGAVLKVLTTGLPALIS"}}); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := ">P01501\nGIGAVLKVLTTGLPALIS"; strings.TrimRight(string(got), "\n") != want {
		t.Errorf("CreateInput() wrote %q, want %q", got, want)
	}
}
