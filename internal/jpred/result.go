// Package jpred reads Jpred results files, locates them on the filesystem,
// and writes Jpred input files.
package jpred

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	// PredictionMarker names the line with the per-residue structure labels
	PredictionMarker = "jnetpred"

	// ConfidenceMarker names the line with the per-residue confidence scores
	ConfidenceMarker = "JNETCONF"
)

// Prediction is Jpred's secondary structure prediction for one sequence.
type Prediction struct {
	// Labels is the predicted structural class of each residue (H, E or -)
	Labels []string `json:"labels"`

	// Confidence is Jpred's confidence in each label, 0 to 9
	Confidence []int `json:"confidence"`
}

// ParseError is returned for a results file that is not usable.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed Jpred results: %s", e.Reason)
	}
	return fmt.Sprintf("malformed Jpred results in %s: %s", e.Path, e.Reason)
}

// ParseFile reads the Jpred results file at path.
func ParseFile(path string) (Prediction, error) {
	file, err := os.Open(path)
	if err != nil {
		return Prediction{}, fmt.Errorf("failed to open Jpred results: %w", err)
	}
	defer file.Close()

	p, err := Parse(file)
	if pe, ok := err.(*ParseError); ok {
		pe.Path = path
	}
	return p, err
}

// Parse reads a Jpred results file. Lines are colon separated, the first
// field being the name of the line and the second a comma separated
// (and comma terminated) list of per-residue values:
//
//	jnetpred:-,H,H,H,-,
//	JNETCONF:7,5,8,8,3,
func Parse(r io.Reader) (p Prediction, err error) {
	var labels, confidences []string
	foundLabels, foundConfidences := false, false

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		fields := strings.Split(strings.TrimRight(scanner.Text(), "\r"), ":")
		if len(fields) < 2 {
			continue
		}

		switch {
		case contains(fields, PredictionMarker):
			if labels, err = values(PredictionMarker, fields[1]); err != nil {
				return p, err
			}
			foundLabels = true
		case contains(fields, ConfidenceMarker):
			if confidences, err = values(ConfidenceMarker, fields[1]); err != nil {
				return p, err
			}
			foundConfidences = true
		}
	}
	if err = scanner.Err(); err != nil {
		return p, fmt.Errorf("failed to read Jpred results: %w", err)
	}

	if !foundLabels {
		return p, &ParseError{Reason: fmt.Sprintf("no %s line", PredictionMarker)}
	}
	if !foundConfidences {
		return p, &ParseError{Reason: fmt.Sprintf("no %s line", ConfidenceMarker)}
	}
	if len(labels) != len(confidences) {
		return p, &ParseError{
			Reason: fmt.Sprintf("%d labels but %d confidence scores", len(labels), len(confidences)),
		}
	}

	p.Labels = labels
	p.Confidence = make([]int, len(confidences))
	for i, c := range confidences {
		if p.Confidence[i], err = strconv.Atoi(strings.TrimSpace(c)); err != nil {
			return Prediction{}, &ParseError{
				Reason: fmt.Sprintf("confidence %q at residue %d is not an integer", c, i),
			}
		}
	}
	return p, nil
}

// values splits a comma separated payload, dropping the empty field after
// its trailing comma.
func values(marker, payload string) ([]string, error) {
	vals := strings.Split(strings.TrimSpace(payload), ",")
	if last := vals[len(vals)-1]; last != "" {
		return nil, &ParseError{Reason: fmt.Sprintf("%s payload not comma terminated", marker)}
	}
	return vals[:len(vals)-1], nil
}

func contains(fields []string, marker string) bool {
	for _, f := range fields {
		if f == marker {
			return true
		}
	}
	return false
}
