// Package cmd - ranges command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rate-table/core/output"
	"rate-table/core/ranges"
	"rate-table/internal/config"
)

var rangesOutput string

// rangesCmd represents the ranges command
var rangesCmd = &cobra.Command{
	Use:   "ranges [csv]",
	Short: "Report per-country min/max rates",
	Long: `Read a CSV rate sheet and emit a per-country [min, max] rate report.

The input needs a country-code column (Country Code, country_code or
ISO) and a rate column; column names are matched case-insensitively.

Examples:
  rate-table ranges rates.csv
  rate-table ranges --output ranges.json rates.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runRanges,
}

func init() {
	rangesCmd.Flags().StringVarP(&rangesOutput, "output", "o", "", "output path (default from config)")
}

func runRanges(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	outPath := rangesOutput
	if outPath == "" {
		outPath = cfg.Output.RangesPath
	}

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	cols := ranges.Columns{
		Country: cfg.Input.CountryColumns,
		Rate:    cfg.Input.RateColumns,
	}

	report, stats, err := ranges.Aggregate(in, cols)
	if err != nil {
		return err
	}

	data, err := report.Marshal()
	if err != nil {
		return err
	}
	if err := output.WriteFileAtomic(outPath, data); err != nil {
		return err
	}

	fmt.Printf("Accepted %d rows (%d dropped)\n", stats.RowsAccepted, stats.RowsDropped)
	fmt.Printf("Countries: %d\n", len(report))
	fmt.Printf("Written: %s\n", outPath)
	return nil
}
