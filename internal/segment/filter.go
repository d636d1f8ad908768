package segment

// Jpred's structural class symbols
const (
	Helix  = "H"
	Strand = "E"
)

// Filter zeroes the confidence of every residue not predicted as symbol.
func Filter(labels []string, confidences []int, symbol string) ([]int, error) {
	if len(labels) != len(confidences) {
		return nil, &PreconditionError{
			Op:     "filter",
			Reason: lengthMismatch(len(labels), len(confidences)),
		}
	}

	filtered := make([]int, len(labels))
	for i, label := range labels {
		if label == symbol {
			filtered[i] = confidences[i]
		}
	}
	return filtered, nil
}

// FilterHelix keeps the confidence of helical residues only.
func FilterHelix(labels []string, confidences []int) ([]int, error) {
	return Filter(labels, confidences, Helix)
}
