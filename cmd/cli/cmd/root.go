// Package cmd provides the CLI commands for rate-table.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rate-table/internal/config"
	"rate-table/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rate-table",
	Short: "Compile telephony billing rate tables",
	Long: `rate-table turns a sparse per-destination rate sheet into a dense,
closure-complete table supporting longest-prefix-match rate lookups.

Every prefix length observed in the input resolves to a rate via
nearest-ancestor inheritance, so routing-time lookup is a plain binary
search over the emitted table.

Examples:
  rate-table compile rates.csv
  rate-table compile --output table.json rates.csv
  rate-table ranges rates.csv`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rate-table.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(rangesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("rate-table version 0.1.0")
	},
}
