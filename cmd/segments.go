package cmd

import (
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/annotate"
	"github.com/spf13/cobra"
)

// segmentsCmd is for logging the segments in a single Jpred results file
var segmentsCmd = &cobra.Command{
	Use:                        "segments [jnet]",
	Short:                      "Log the segments in a Jpred results file",
	Run:                        annotate.SegmentsCmd,
	SuggestionsMinimumDistance: 3,
	Example:                    "  landscape segments Jpred/DBAASP.txt_dir/_output/P01501A_1.jnet --length 26",
}

// set flags
func init() {
	segmentsCmd.Flags().IntP("length", "l", 0, "length of the original sequence, if it was padded")
	segmentsCmd.Flags().Bool("strand", false, "log strand segments too")

	RootCmd.AddCommand(segmentsCmd)
}
