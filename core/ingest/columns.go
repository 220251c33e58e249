// Package ingest reads a delimited rate sheet and normalizes it into
// the sparse base mapping. Malformed rows are dropped and counted,
// never fatal; a header without the required columns aborts the run
// before any row is processed.
package ingest

import (
	"strings"

	"rate-table/internal/errors"
)

// Columns configures header discovery. Each slice is an ordered alias
// set; the first alias present in the header (case-insensitively)
// selects the column.
type Columns struct {
	Prefix []string
	Rate   []string
}

// DefaultColumns returns the recognized column names for common
// carrier rate sheets.
func DefaultColumns() Columns {
	return Columns{
		Prefix: []string{"destination prefixes", "destination prefix", "prefixes", "prefix"},
		Rate:   []string{"rate", "price", "cost"},
	}
}

// FindColumn locates the first alias present in the header and returns
// its index.
func FindColumn(header []string, aliases []string) (int, bool) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, a := range aliases {
		if i, ok := byName[strings.ToLower(a)]; ok {
			return i, true
		}
	}
	return 0, false
}

// MissingColumn builds the fatal configuration error for a header that
// matches none of the recognized names.
func MissingColumn(kind string, aliases []string) error {
	return errors.Newf(errors.TypeConfig,
		"no %s column in header, expected one of: %s",
		kind, strings.Join(aliases, ", "))
}
