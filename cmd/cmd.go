// Package cmd defines the command-line interface for gad.
package cmd

import (
	"strconv"

	"github.com/huangsam/gad/internal/contract"
	"github.com/huangsam/gad/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(versionCmd)
	rootCmd.SetVersionTemplate("gad {{.Version}}\n")

	// Bind all root flags to Viper
	f := rootCmd.Flags()
	f.IntP("auto-detect", "A", 0, "Auto-detect the N most active authors per repository; pass as -A[=N]")
	f.Lookup("auto-detect").NoOptDefVal = strconv.Itoa(contract.DefaultAutoDetectCount)
	f.StringP("border", "b", string(schema.ASCIIBorder), "Format of the table borders: ascii, single or double")
	f.BoolP("clear", "c", false, "Clear the screen prior to display")
	f.IntP("duration", "d", contract.DefaultDurationWeeks, "Time period in weeks")
	f.StringP("display", "D", string(schema.BlockDisplay), "Format of the day cells: numeric or block")
	f.BoolP("exceptions", "E", false, "Display full error detail on failure")
	f.BoolP("fetch", "F", false, "Fetch new upstream commits for the configured repositories")
	f.StringP("config", "f", "", "Read configuration from FILE")
	f.BoolP("legend", "l", false, "Display a legend as the last entry in the table")
	f.StringP("orientation", "o", string(schema.VerticalOrientation), "Orientation of the grid: vertical or horizontal")
	f.BoolP("totals", "t", false, "Display a summary total adjacent to each author")
	f.CountP("verbose", "v", "Set the verbosity level (multiple allowed)")
	f.BoolP("version", "V", false, "Print the version and exit")
	f.IntP("width", "w", 0, "Display at most WIDTH grid columns (0 = natural width)")
	f.Int("workers", contract.DefaultWorkers, "Number of concurrent repository workers")
	if err := viper.BindPFlags(f); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
