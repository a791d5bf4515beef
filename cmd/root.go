package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/huangsam/gad/core"
	"github.com/huangsam/gad/internal/contract"
	"github.com/huangsam/gad/internal/gitfeed"
	"github.com/huangsam/gad/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint.
var rootCmd = &cobra.Command{
	Use:                "gad",
	Short:              "Display a calendar of commit activity for your Git repositories.",
	Long:               `gad draws a calendar-style table of commit activity ("git active days") per repository, optionally broken down by author.`,
	Version:            version,
	Args:               cobra.NoArgs,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	PreRunE:            sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		if cfg.Clear {
			fmt.Print("\033[H\033[2J")
		}
		return core.Run(rootCtx, cfg, gitfeed.NewGoGitFeed(), os.Stdout)
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(contract.ExpandHome(configFile))
	} else {
		// Set config file name and paths
		viper.SetConfigName("gad")           // Name of config file (without extension)
		viper.SetConfigType("yaml")          // We'll use YAML format
		viper.AddConfigPath("$HOME/.config") // Look in the user config directory
		viper.AddConfigPath(".")             // Look in the current directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("GAD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("duration", contract.DefaultDurationWeeks)
	viper.SetDefault("border", string(schema.ASCIIBorder))
	viper.SetDefault("display", string(schema.BlockDisplay))
	viper.SetDefault("orientation", string(schema.VerticalOrientation))
	viper.SetDefault("workers", contract.DefaultWorkers)
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return &contract.ConfigError{Field: "file", Msg: err.Error()}
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return &contract.ConfigError{Field: "input", Msg: err.Error()}
	}

	// 3. Run all validation and complex parsing.
	// This function populates the global 'cfg' from 'input'.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	contract.SetupLogging(cfg.Verbosity)
	return nil
}

// Execute runs the root command, reporting failures tersely by default
// and with the full cause chain when requested.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %s\n", contract.FormatError(err, cfg.Exceptions))
	}
	return err
}
