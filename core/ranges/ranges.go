// Package ranges aggregates a rate sheet into per-country minimum and
// maximum rates. Unlike the rate table compiler this is pure
// aggregation: no closure, no search structure.
package ranges

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"rate-table/core/ingest"
	"rate-table/internal/errors"
)

// Columns configures header discovery for the ranges report.
type Columns struct {
	Country []string
	Rate    []string
}

// DefaultColumns returns the recognized column names.
func DefaultColumns() Columns {
	return Columns{
		Country: []string{"country code", "country_code", "iso"},
		Rate:    []string{"rate", "price", "cost"},
	}
}

// Range is the observed [min, max] rate pair for one country.
type Range struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// MarshalJSON encodes the range as a two-element JSON number array.
func (r Range) MarshalJSON() ([]byte, error) {
	return []byte("[" + r.Min.String() + ", " + r.Max.String() + "]"), nil
}

// Report maps upper-cased country codes to their rate range.
// json.Marshal sorts map keys, so serialization is deterministic.
type Report map[string]Range

// Stats reports rows seen and rows skipped during aggregation.
type Stats struct {
	RowsAccepted int
	RowsDropped  int
}

// Aggregate consumes a CSV rate sheet and computes the per-country
// rate ranges. Rows with a blank country code or an unparseable rate
// are skipped.
func Aggregate(r io.Reader, cols Columns) (Report, Stats, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, Stats{}, errors.Config("input is empty, expected a header row")
		}
		return nil, Stats{}, errors.IO("failed to read header", err)
	}

	countryCol, ok := ingest.FindColumn(header, cols.Country)
	if !ok {
		return nil, Stats{}, ingest.MissingColumn("country code", cols.Country)
	}
	rateCol, ok := ingest.FindColumn(header, cols.Rate)
	if !ok {
		return nil, Stats{}, ingest.MissingColumn("rate", cols.Rate)
	}

	report := make(Report)
	var stats Stats

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, errors.IO("failed to read row", err)
		}

		if countryCol >= len(record) || rateCol >= len(record) {
			stats.RowsDropped++
			continue
		}

		cc := strings.ToUpper(strings.TrimSpace(record[countryCol]))
		if cc == "" {
			stats.RowsDropped++
			continue
		}

		d, err := decimal.NewFromString(strings.TrimSpace(record[rateCol]))
		if err != nil {
			stats.RowsDropped++
			continue
		}

		if cur, ok := report[cc]; ok {
			if d.LessThan(cur.Min) {
				cur.Min = d
			}
			if d.GreaterThan(cur.Max) {
				cur.Max = d
			}
			report[cc] = cur
		} else {
			report[cc] = Range{Min: d, Max: d}
		}
		stats.RowsAccepted++
	}

	return report, stats, nil
}

// Marshal encodes the report as indented JSON.
func (r Report) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, errors.Internal("failed to encode ranges report", err)
	}
	return data, nil
}
