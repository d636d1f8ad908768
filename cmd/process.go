package cmd

import (
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/annotate"
	"github.com/spf13/cobra"
)

// processCmd is for adding Jpred segment columns to a database
var processCmd = &cobra.Command{
	Use:                        "process",
	Short:                      "Add Jpred helix segments, scores and content to a database",
	Run:                        annotate.ProcessCmd,
	SuggestionsMinimumDistance: 3,
	Long: `
Read the Jpred results of every entry in a database and add columns with:
  - the helical segments predicted by Jpred ([start, end) residue indexes)
  - the average Jpred confidence of each segment
  - the percentage of the sequence's residues within a segment

Residues are joined into segments across gaps of up to 'max-gap' residues.
Segments shorter than 'min-length' or with an average confidence below
'min-score' are dropped. Entries without Jpred results are skipped.`,
	Example: "  landscape process -i DBAASP.xlsx -o DBAASP.jpred.xlsx --report DBAASP.json",
}

// set flags
func init() {
	processCmd.Flags().StringP("in", "i", "", "table of entries <xlsx, csv, tsv or FASTA>")
	processCmd.Flags().StringP("out", "o", "", "output table <xlsx, csv or tsv> (default: <in>.jpred.<ext>)")
	processCmd.Flags().StringP("database", "d", "", "database name (default: input file name)")
	processCmd.Flags().String("report", "", "output file for a JSON report of every entry")
	processCmd.Flags().BoolP("cross-reference", "x", false, "use the results of any identifier in the entry's key")
	processCmd.Flags().Bool("strand", false, "add strand segment columns")

	RootCmd.AddCommand(processCmd)
}
