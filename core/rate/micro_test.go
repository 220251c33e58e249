package rate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Micro
		wantErr bool
	}{
		{name: "cent rate", input: "0.01", want: 10000},
		{name: "two cents", input: "0.02", want: 20000},
		{name: "five cents", input: "0.05", want: 50000},
		{name: "whole unit", input: "1", want: 1_000_000},
		{name: "sub-micro precision rounds", input: "0.0123456789", want: 12346},
		{name: "exact half rounds away from zero", input: "0.0000005", want: 1},
		{name: "negative half rounds away from zero", input: "-0.0000005", want: -1},
		{name: "negative rate", input: "-0.25", want: -250000},
		{name: "surrounding whitespace", input: "  0.5  ", want: 500000},
		{name: "zero", input: "0", want: 0},
		{name: "empty", input: "", wantErr: true},
		{name: "not a number", input: "free", wantErr: true},
		{name: "two dots", input: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromDecimalIsExact(t *testing.T) {
	// 0.1 is not representable in binary floating point; the decimal
	// path must not care.
	d := decimal.RequireFromString("0.1")
	assert.Equal(t, Micro(100000), FromDecimal(d))
}

func TestMicroDecimal(t *testing.T) {
	d := Micro(10000).Decimal()
	assert.True(t, d.Equal(decimal.RequireFromString("0.01")), "got %s", d)
}
