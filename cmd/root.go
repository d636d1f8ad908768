// Package cmd is for command line interactions with the landscape application
package cmd

import (
	"log"

	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "landscape",
	Short: `Annotate a peptide database with secondary structure segments predicted by Jpred.
Prepare Jpred input for new entries and summarize Jpred results per entry`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags shared by every command
func init() {
	// settings is an optional settings file (YAML) that overrides the defaults
	RootCmd.PersistentFlags().StringP(config.SettingsFlag, "s", "", "settings file <YAML>")
	RootCmd.PersistentFlags().StringP("root", "r", "Jpred", "directory with Jpred inputs and results")
	RootCmd.PersistentFlags().StringP("job", "j", "Uniprot_keywords", "job type the Jpred results were made for")
	RootCmd.PersistentFlags().IntP("threads", "t", 0, "number of entries annotated at once (default: number of CPUs)")

	viper.BindPFlag(config.SettingsFlag, RootCmd.PersistentFlags().Lookup(config.SettingsFlag))
	viper.BindPFlag("root", RootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("job", RootCmd.PersistentFlags().Lookup("job"))
	viper.BindPFlag("threads", RootCmd.PersistentFlags().Lookup("threads"))
}
