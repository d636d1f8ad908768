package segment

import "fmt"

// PreconditionError is returned when a caller breaks the contract of one
// of this package's functions.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func lengthMismatch(labels, confidences int) string {
	return fmt.Sprintf("%d labels but %d confidence scores", labels, confidences)
}

// Pad concatenates seq with itself until it is at least minLength long.
// Jpred rejects short sequences, so these are predicted in their padded form.
func Pad(seq string, minLength int) (string, error) {
	if len(seq) == 0 {
		return "", &PreconditionError{Op: "pad", Reason: "empty sequence"}
	}

	for len(seq) < minLength {
		seq += seq
	}
	return seq, nil
}

// Rescale maps segments found on a padded sequence back onto the original
// sequence of length originalLength.
//
// Segments ending within the original sequence are kept. The first segment
// to cross the end is clamped to it, or dropped when fewer than minLength
// residues would remain. Everything after that lies in the padding.
func Rescale(originalLength, minLength int, segments []Segment) ([]Segment, error) {
	if len(segments) == 0 {
		return nil, &PreconditionError{Op: "rescale", Reason: "no segments"}
	}
	if originalLength < 1 {
		return nil, &PreconditionError{
			Op:     "rescale",
			Reason: fmt.Sprintf("invalid sequence length %d", originalLength),
		}
	}

	rescaled := []Segment{}
	for _, seg := range segments {
		if seg.End <= originalLength {
			rescaled = append(rescaled, seg)
			continue
		}

		if originalLength-seg.Start >= minLength {
			rescaled = append(rescaled, Segment{Start: seg.Start, End: originalLength})
		}
		break
	}
	return rescaled, nil
}
