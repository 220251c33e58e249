package ingest

import (
	"encoding/csv"
	"io"
	"strings"

	"rate-table/core/closure"
	"rate-table/core/rate"
	"rate-table/internal/errors"
)

// Stats reports what ingestion accepted and dropped.
type Stats struct {
	// RowsAccepted counts valid rows, including later duplicates that
	// overwrote an earlier prefix.
	RowsAccepted int

	// RowsDropped counts malformed rows (empty or non-digit prefix,
	// unparseable rate, missing fields).
	RowsDropped int
}

// Read consumes a CSV rate sheet and builds the base mapping.
// The first record is the header; prefix and rate columns are located
// case-insensitively via cols. Rows are processed in input order and
// duplicate prefixes follow last-write-wins.
func Read(r io.Reader, cols Columns) (*closure.Base, Stats, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, Stats{}, errors.Config("input is empty, expected a header row")
		}
		return nil, Stats{}, errors.IO("failed to read header", err)
	}

	prefixCol, ok := FindColumn(header, cols.Prefix)
	if !ok {
		return nil, Stats{}, MissingColumn("prefix", cols.Prefix)
	}
	rateCol, ok := FindColumn(header, cols.Rate)
	if !ok {
		return nil, Stats{}, MissingColumn("rate", cols.Rate)
	}

	base := closure.NewBase()
	var stats Stats

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, errors.IO("failed to read row", err)
		}

		prefix, micro, ok := normalizeRow(record, prefixCol, rateCol)
		if !ok {
			stats.RowsDropped++
			continue
		}

		base.Put(prefix, micro)
		stats.RowsAccepted++
	}

	return base, stats, nil
}

// normalizeRow extracts and validates one row. A row is dropped when a
// required field is missing, the prefix is empty or contains a
// non-digit, or the rate fails to parse as a decimal number.
func normalizeRow(record []string, prefixCol, rateCol int) (string, rate.Micro, bool) {
	if prefixCol >= len(record) || rateCol >= len(record) {
		return "", 0, false
	}

	prefix := strings.TrimSpace(record[prefixCol])
	if prefix == "" || !isDigits(prefix) {
		return "", 0, false
	}

	micro, err := rate.Parse(record[rateCol])
	if err != nil {
		return "", 0, false
	}

	return prefix, micro, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
