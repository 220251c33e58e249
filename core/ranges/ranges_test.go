package ranges

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rate-table/internal/errors"
)

func TestAggregate(t *testing.T) {
	csv := "Country Code,Destination Prefixes,Rate\n" +
		"DE,49,0.01\n" +
		"DE,4915,0.07\n" +
		"DE,4916,0.03\n" +
		"gb,44,0.02\n" +
		"US,1,0.05\n"

	report, stats, err := Aggregate(strings.NewReader(csv), DefaultColumns())
	require.NoError(t, err)

	assert.Equal(t, 5, stats.RowsAccepted)
	assert.Equal(t, 0, stats.RowsDropped)
	require.Len(t, report, 3)

	// Country codes are upper-cased on the way in.
	de, ok := report["DE"]
	require.True(t, ok)
	assert.True(t, de.Min.Equal(decimal.RequireFromString("0.01")), "got %s", de.Min)
	assert.True(t, de.Max.Equal(decimal.RequireFromString("0.07")), "got %s", de.Max)

	gb, ok := report["GB"]
	require.True(t, ok)
	assert.True(t, gb.Min.Equal(gb.Max))
}

func TestAggregateColumnAliases(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{name: "country_code and price", csv: "country_code,price\nFR,0.04\n"},
		{name: "iso and cost", csv: "ISO,Cost\nFR,0.04\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, _, err := Aggregate(strings.NewReader(tt.csv), DefaultColumns())
			require.NoError(t, err)
			_, ok := report["FR"]
			assert.True(t, ok)
		})
	}
}

func TestAggregateMissingColumnIsFatal(t *testing.T) {
	_, _, err := Aggregate(strings.NewReader("Prefix,Rate\n49,0.01\n"), DefaultColumns())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig), "got %v", err)
	assert.Contains(t, err.Error(), "country code")
}

func TestAggregateDropsBadRows(t *testing.T) {
	csv := "Country Code,Rate\n" +
		",0.01\n" + // blank country
		"DE,n/a\n" + // unparseable rate
		"DE\n" + // missing rate field
		"DE,0.02\n"

	report, stats, err := Aggregate(strings.NewReader(csv), DefaultColumns())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.RowsAccepted)
	assert.Equal(t, 3, stats.RowsDropped)
	require.Len(t, report, 1)
}

func TestReportMarshal(t *testing.T) {
	report := Report{
		"US": {Min: decimal.RequireFromString("0.01"), Max: decimal.RequireFromString("0.05")},
		"DE": {Min: decimal.RequireFromString("0.02"), Max: decimal.RequireFromString("0.02")},
	}

	data, err := report.Marshal()
	require.NoError(t, err)

	// Ranges serialize as plain JSON number pairs, keys sorted.
	var decoded map[string][2]json.Number
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, json.Number("0.01"), decoded["US"][0])
	assert.Equal(t, json.Number("0.05"), decoded["US"][1])
	assert.Equal(t, json.Number("0.02"), decoded["DE"][0])

	assert.Less(t, strings.Index(string(data), `"DE"`), strings.Index(string(data), `"US"`))
}
