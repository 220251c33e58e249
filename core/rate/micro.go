// Package rate defines the fixed-point rate representation used
// throughout the pipeline. Rates are carried as integer micro-units of
// currency per billing unit so that no floating-point value ever
// touches the money path.
package rate

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of micro-units per whole currency unit.
const Scale = 1_000_000

var scaleFactor = decimal.NewFromInt(Scale)

// Micro is a billing rate in micro-units of currency per billing unit.
type Micro int64

// FromDecimal converts a decimal rate to micro-units.
// The conversion rounds half away from zero: 0.0000005 becomes 1
// micro-unit and -0.0000005 becomes -1. The rounding rule is part of
// the artifact contract and must not vary by platform.
func FromDecimal(d decimal.Decimal) Micro {
	return Micro(d.Mul(scaleFactor).Round(0).IntPart())
}

// Parse converts a decimal rate string to micro-units.
// Leading and trailing whitespace is ignored.
func Parse(s string) (Micro, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return FromDecimal(d), nil
}

// Decimal converts the rate back to a decimal currency amount.
func (m Micro) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(m)).Div(scaleFactor)
}
