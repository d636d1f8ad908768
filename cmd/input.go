package cmd

import (
	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/annotate"
	"github.com/spf13/cobra"
)

// inputCmd is for writing a Jpred input file for entries without Jpred results
var inputCmd = &cobra.Command{
	Use:                        "input",
	Short:                      "Write Jpred input for the entries that haven't been predicted",
	Run:                        annotate.InputCmd,
	SuggestionsMinimumDistance: 3,
	Long: `
Write a Jpred input file (FASTA) with every entry of a database that doesn't
have Jpred results yet. The file is written to <root>/Jpred_input_<database>.txt.

Sequences shorter than 'pad-length' residues are repeated until they are long
enough for Jpred. 'process' maps their segments back onto the original sequence.`,
	Example: "  landscape input -i DBAASP.xlsx",
}

// set flags
func init() {
	inputCmd.Flags().StringP("in", "i", "", "table of entries <xlsx, csv, tsv or FASTA>")
	inputCmd.Flags().StringP("database", "d", "", "database name (default: input file name)")
	inputCmd.Flags().BoolP("cross-reference", "x", false, "an entry is predicted if any identifier in its key is")

	RootCmd.AddCommand(inputCmd)
}
