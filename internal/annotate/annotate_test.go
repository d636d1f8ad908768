package annotate

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/config"
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/jpred"
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/segment"
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/store"
)

// testConfig is the default config with its root at root
func testConfig(root string) *config.Config {
	return &config.Config{
		Root:      root,
		Job:       "",
		Key:       "Entry",
		Sequence:  "Sequence",
		Length:    "Length",
		MinLength: 1,
		PadLength: 20,
		Threads:   4,
		Helix: config.ClassConfig{
			Symbol:     segment.Helix,
			Thresholds: segment.Thresholds{MinLength: 5, MaxGap: 3, MinScore: 7},
		},
		Strand: config.ClassConfig{
			Symbol:     segment.Strand,
			Thresholds: segment.Thresholds{MinLength: 5, MaxGap: 3, MinScore: 7},
		},
	}
}

// prediction makes a Jpred prediction from a label string and a confidence
// string, one character per residue: "--HHH", "75567"
func prediction(labels, confidence string) jpred.Prediction {
	p := jpred.Prediction{}
	for i := range labels {
		p.Labels = append(p.Labels, labels[i:i+1])
		c, _ := strconv.Atoi(confidence[i : i+1])
		p.Confidence = append(p.Confidence, c)
	}
	return p
}

// writeJnet writes a Jpred results file
func writeJnet(t *testing.T, dir, name string, p jpred.Prediction) {
	t.Helper()

	confidence := make([]string, len(p.Confidence))
	for i, c := range p.Confidence {
		confidence[i] = strconv.Itoa(c)
	}

	file := "jnetpred:" + strings.Join(p.Labels, ",") + ",\n" +
		"JNETCONF:" + strings.Join(confidence, ",") + ",\n"
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(file), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestAnnotate(t *testing.T) {
	conf := testConfig("")
	conf.Helix.Thresholds = segment.Thresholds{MinLength: 3, MaxGap: 2, MinScore: 4}

	p := prediction("--HHH--HH-", "7556732438")
	got, err := Annotate(store.Entry{Key: "P01501", Length: 10}, p, conf, false)
	if err != nil {
		t.Fatal(err)
	}

	want := &Result{
		Entry:  "P01501",
		Padded: true,
		Helix: Structure{
			Segments:   []segment.Segment{{Start: 2, End: 9}},
			Scores:     []float64{5},
			Percentage: 70,
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Annotate() = %+v, want %+v", got, want)
	}
}

func TestAnnotate_padded(t *testing.T) {
	conf := testConfig("")

	tests := []struct {
		name   string
		length int
		p      jpred.Prediction
		want   Structure
	}{
		{
			"segment in the padding dropped",
			13,
			prediction(
				"HHHHHHHHH----HHHHHHHHH----",
				"99999999900009999999990000",
			),
			Structure{
				Segments:   []segment.Segment{{Start: 0, End: 9}},
				Scores:     []float64{9},
				Percentage: 100 * float64(9) / float64(13),
			},
		},
		{
			"segment across the end clamped",
			12,
			prediction(
				"------HHHHHHHHHHHH--HHHH",
				"000000999999999999009999",
			),
			Structure{
				Segments:   []segment.Segment{{Start: 6, End: 12}},
				Scores:     []float64{9},
				Percentage: 50,
			},
		},
		{
			"no segments",
			12,
			prediction(
				"------------------------",
				"999999999999999999999999",
			),
			Structure{
				Segments:   nil,
				Scores:     []float64{},
				Percentage: 0,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Annotate(store.Entry{Key: "P68405", Length: tt.length}, tt.p, conf, false)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Padded {
				t.Error("Annotate().Padded = false, want true")
			}
			if !reflect.DeepEqual(got.Helix, tt.want) {
				t.Errorf("Annotate().Helix = %+v, want %+v", got.Helix, tt.want)
			}
		})
	}
}

func TestAnnotate_strand(t *testing.T) {
	conf := testConfig("")

	p := prediction(
		"HHHHHHHHHHHH---EEEEEE-----------",
		"99999999999900088888800000000000",
	)
	got, err := Annotate(store.Entry{Key: "P01501", Length: 32}, p, conf, true)
	if err != nil {
		t.Fatal(err)
	}

	if want := []segment.Segment{{Start: 0, End: 12}}; !reflect.DeepEqual(got.Helix.Segments, want) {
		t.Errorf("Annotate().Helix.Segments = %v, want %v", got.Helix.Segments, want)
	}
	if got.Strand == nil {
		t.Fatal("Annotate().Strand = nil")
	}
	if want := []segment.Segment{{Start: 15, End: 21}}; !reflect.DeepEqual(got.Strand.Segments, want) {
		t.Errorf("Annotate().Strand.Segments = %v, want %v", got.Strand.Segments, want)
	}
	if got.Padded {
		t.Error("Annotate().Padded = true for a long sequence")
	}
}

func TestAnnotate_errors(t *testing.T) {
	conf := testConfig("")
	var pe *segment.PreconditionError

	p := prediction("HHHHH", "99999")
	if _, err := Annotate(store.Entry{Key: "P01501", Length: 0}, p, conf, false); !errors.As(err, &pe) {
		t.Errorf("Annotate() with no length returned %v, want a PreconditionError", err)
	}

	p.Confidence = p.Confidence[1:]
	if _, err := Annotate(store.Entry{Key: "P01501", Length: 5}, p, conf, false); !errors.As(err, &pe) {
		t.Errorf("Annotate() with mismatched labels returned %v, want a PreconditionError", err)
	}
}
