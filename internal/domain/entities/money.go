package entities

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmountValue = errors.New("invalid amount value")

// MinorUnitsFromFloat converts an amount expressed in major units (49.99)
// into minor units (4999). Non-positive and non-finite amounts are rejected
// before any processor call is made. Sub-cent precision is rejected rather
// than rounded so a caller bug never silently changes the charge.
func MinorUnitsFromFloat(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidAmountValue
	}
	d := decimal.NewFromFloat(amount)
	minor := d.Shift(2)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, ErrInvalidAmountValue
	}
	return minor.IntPart(), nil
}

// FormatMinorUnits renders minor units as the fixed two-decimal string every
// processor wire format requires ("4999" -> "49.99").
func FormatMinorUnits(minorUnits int64) string {
	return decimal.New(minorUnits, -2).StringFixed(2)
}
