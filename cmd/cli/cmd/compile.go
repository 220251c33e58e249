// Package cmd - compile command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rate-table/core/ingest"
	"rate-table/core/output"
	"rate-table/core/pipeline"
	"rate-table/internal/config"
)

var compileOutput string

// compileCmd represents the compile command
var compileCmd = &cobra.Command{
	Use:   "compile [csv]",
	Short: "Compile a rate sheet into a dense rate table",
	Long: `Read a CSV rate sheet and emit the closure-complete, sorted rate
table artifact.

The input needs a dial-prefix column and a rate column; column names
are matched case-insensitively. Rates are converted to micro-units of
currency. The artifact is written whole and atomically.

Examples:
  rate-table compile rates.csv
  rate-table compile --output table.json rates.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "output path (default from config)")
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	outPath := compileOutput
	if outPath == "" {
		outPath = cfg.Output.TablePath
	}

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	cols := ingest.Columns{
		Prefix: cfg.Input.PrefixColumns,
		Rate:   cfg.Input.RateColumns,
	}

	result, err := pipeline.Compile(in, cols)
	if err != nil {
		return err
	}

	data, err := result.Table.Marshal()
	if err != nil {
		return err
	}
	if err := output.WriteFileAtomic(outPath, data); err != nil {
		return err
	}

	fmt.Printf("Accepted %d rows (%d dropped)\n", result.Stats.RowsAccepted, result.Stats.RowsDropped)
	fmt.Printf("Compiled %d prefixes", result.Table.Len())
	if result.Stats.Unresolved > 0 {
		fmt.Printf(" (%d unresolvable dropped)", result.Stats.Unresolved)
	}
	fmt.Println()
	fmt.Printf("Written: %s\n", outPath)
	return nil
}
