// Package segment finds secondary structure segments in per-residue
// confidence scores and scores them.
package segment

import (
	"fmt"
	"sort"
	"strings"
)

// Segment is a half-open [Start, End) range of residue indexes.
type Segment struct {
	// Start is the index of the first residue in the segment
	Start int `json:"start"`

	// End is one past the index of the last residue in the segment
	End int `json:"end"`
}

// Len returns the number of residues spanned by the segment (gaps included).
func (s Segment) Len() int {
	return s.End - s.Start
}

// String formats a segment the way it is stored in a result column: (2, 9)
func (s Segment) String() string {
	return fmt.Sprintf("(%d, %d)", s.Start, s.End)
}

// Thresholds are the length, gap and score limits used when detecting
// segments of one structural class.
type Thresholds struct {
	// MinLength is the minimum length of a segment, bridged gaps included
	MinLength int `mapstructure:"min-length"`

	// MaxGap is the longest run of zero scores that is bridged between runs
	MaxGap int `mapstructure:"max-gap"`

	// MinScore is the minimum average confidence of a segment
	MinScore float64 `mapstructure:"min-score"`
}

// Detect returns the segments of filtered that pass the thresholds.
//
// Runs of positive scores are found first and then merged across gaps of
// at most MaxGap zeros. A merged candidate is kept if it spans at least
// MinLength residues and its average score, over its non-zero residues,
// is at least MinScore. The result is sorted by Start.
func Detect(filtered []int, t Thresholds) []Segment {
	var segments []Segment
	for _, candidate := range Merge(Runs(filtered), t.MaxGap) {
		if candidate.Len() < t.MinLength {
			continue
		}
		if Score(filtered, candidate) < t.MinScore {
			continue
		}
		segments = append(segments, candidate)
	}

	sort.Slice(segments, func(i, j int) bool {
		return segments[i].Start < segments[j].Start
	})
	return segments
}

// Runs returns the maximal runs of strictly positive values in scores.
func Runs(scores []int) (runs []Segment) {
	start := -1
	for i, s := range scores {
		switch {
		case s > 0 && start < 0:
			start = i
		case s <= 0 && start >= 0:
			runs = append(runs, Segment{Start: start, End: i})
			start = -1
		}
	}

	if start >= 0 {
		runs = append(runs, Segment{Start: start, End: len(scores)})
	}
	return runs
}

// Merge joins neighboring runs separated by maxGap or fewer residues.
// runs must be sorted and non-overlapping.
func Merge(runs []Segment, maxGap int) (merged []Segment) {
	for _, r := range runs {
		if last := len(merged) - 1; last >= 0 && r.Start-merged[last].End <= maxGap {
			merged[last].End = r.End
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// Format writes segments as a bracketed list: [(2, 9), (12, 20)]
func Format(segments []Segment) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
