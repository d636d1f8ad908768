package segment

import (
	"strconv"
	"strings"
)

// Score is the average of the non-zero scores in seg. Zeros inside a
// bridged gap count toward neither the sum nor the count.
func Score(filtered []int, seg Segment) float64 {
	sum, count := 0, 0
	for _, s := range filtered[seg.Start:seg.End] {
		if s != 0 {
			sum += s
			count++
		}
	}

	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// Scores returns the Score of each segment, in order.
func Scores(filtered []int, segments []Segment) []float64 {
	scores := make([]float64, len(segments))
	for i, seg := range segments {
		scores[i] = Score(filtered, seg)
	}
	return scores
}

// Coverage is the percentage of a sequence's residues covered by segments.
func Coverage(segments []Segment, length int) float64 {
	if len(segments) == 0 || length < 1 {
		return 0
	}

	covered := 0
	for _, seg := range segments {
		covered += seg.Len()
	}

	percent := 100 * float64(covered) / float64(length)
	if percent > 100 {
		return 100
	}
	return percent
}

// FormatScores writes scores as a bracketed list: [5, 7.25]
func FormatScores(scores []float64) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = FormatFloat(s)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatFloat writes f with as few digits as needed.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
