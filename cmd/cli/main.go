// Package main is the entry point for the rate-table CLI.
package main

import (
	"os"

	"rate-table/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
