// Package annotate adds Jpred secondary structure segments to a table of
// peptide entries, and prepares Jpred input for entries without results.
package annotate

import (
	"fmt"

	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/config"
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/jpred"
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/segment"
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/store"
)

// Structure is the segments of one structural class in an entry.
type Structure struct {
	// Segments are the [start, end) residue ranges of the class
	Segments []segment.Segment `json:"segments"`

	// Scores is the average Jpred confidence of each segment
	Scores []float64 `json:"scores"`

	// Percentage of the entry's residues covered by Segments
	Percentage float64 `json:"percentage"`
}

// Result is the secondary structure annotation of a single entry.
type Result struct {
	// Entry is the key of the annotated entry
	Entry string `json:"entry"`

	// ResultEntry is the identifier whose Jpred results were used
	ResultEntry string `json:"resultEntry"`

	// Padded is whether the entry was padded before prediction and
	// its segments were mapped back onto the original sequence
	Padded bool `json:"padded"`

	// Helix segments
	Helix Structure `json:"helix"`

	// Strand segments, only when requested
	Strand *Structure `json:"strand,omitempty"`
}

// Annotate finds the helical (and, if strand is set, strand) segments of
// an entry from its Jpred prediction.
func Annotate(e store.Entry, p jpred.Prediction, conf *config.Config, strand bool) (*Result, error) {
	if e.Length < 1 {
		return nil, &segment.PreconditionError{
			Op:     "annotate",
			Reason: fmt.Sprintf("%s has sequence length %d", e.Key, e.Length),
		}
	}

	res := &Result{Entry: e.Key, Padded: e.Length < conf.PadLength}

	helix, err := structure(e, p, conf.Helix, conf.PadLength)
	if err != nil {
		return nil, fmt.Errorf("failed to find helices in %s: %w", e.Key, err)
	}
	res.Helix = helix

	if strand {
		strands, err := structure(e, p, conf.Strand, conf.PadLength)
		if err != nil {
			return nil, fmt.Errorf("failed to find strands in %s: %w", e.Key, err)
		}
		res.Strand = &strands
	}

	return res, nil
}

// structure finds and scores the segments of one class.
func structure(e store.Entry, p jpred.Prediction, class config.ClassConfig, padLength int) (s Structure, err error) {
	filtered, err := segment.Filter(p.Labels, p.Confidence, class.Symbol)
	if err != nil {
		return s, err
	}

	segments := segment.Detect(filtered, class.Thresholds)
	if e.Length < padLength && len(segments) > 0 {
		if segments, err = segment.Rescale(e.Length, class.MinLength, segments); err != nil {
			return s, err
		}
	}

	return Structure{
		Segments:   segments,
		Scores:     segment.Scores(filtered, segments),
		Percentage: segment.Coverage(segments, e.Length),
	}, nil
}
