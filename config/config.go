// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"runtime"

	"github.com/Peleg-rag/Expanding--the-amyloid-landscape/internal/segment"
	"github.com/spf13/viper"
)

// SettingsFlag is the viper key of an optional settings file
const SettingsFlag = "settings"

// ClassConfig is the segment detection settings for one structural class
type ClassConfig struct {
	// the label Jpred gives residues of this class
	Symbol string `mapstructure:"symbol"`

	// length, gap and score limits on segments of this class
	segment.Thresholds `mapstructure:",squash"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// directory with Jpred inputs and results
	Root string `mapstructure:"root"`

	// job type the Jpred results were made for
	Job string `mapstructure:"job"`

	// name of the entry identifier column
	Key string `mapstructure:"key"`

	// name of the sequence column
	Sequence string `mapstructure:"sequence"`

	// name of the sequence length column
	Length string `mapstructure:"length"`

	// entries shorter than this are not annotated
	MinLength int `mapstructure:"min-length"`

	// sequences shorter than this are padded before prediction
	PadLength int `mapstructure:"pad-length"`

	// number of entries annotated at once
	Threads int `mapstructure:"threads"`

	// helix segment settings
	Helix ClassConfig `mapstructure:"helix"`

	// strand segment settings
	Strand ClassConfig `mapstructure:"strand"`
}

// defaults are the settings used when they're absent from the settings
// file and command line
var defaults = map[string]interface{}{
	"root":              "Jpred",
	"job":               "Uniprot_keywords",
	"key":               "Entry",
	"sequence":          "Sequence",
	"length":            "Length",
	"min-length":        1,
	"pad-length":        20,
	"threads":           runtime.NumCPU(),
	"helix.symbol":      segment.Helix,
	"helix.min-length":  5,
	"helix.max-gap":     3,
	"helix.min-score":   7,
	"strand.symbol":     segment.Strand,
	"strand.min-length": 5,
	"strand.max-gap":    3,
	"strand.min-score":  7,
}

// New returns a new Config struct populated by Viper settings: the
// defaults, then the settings file if one was set, then command line flags.
func New() (*Config, error) {
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	if settings := viper.GetString(SettingsFlag); settings != "" {
		viper.SetConfigFile(settings)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %v", settings, err)
		}
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %v", err)
	}

	if c.Threads < 1 {
		c.Threads = 1
	}
	return c, nil
}
