package rewards

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	baseTierCeiling  = 50
	upperTierCeiling = 100
	upperTierPoints  = upperTierCeiling - baseTierCeiling

	// maxWholeAmount caps the integer part before tiering, the same saturation
	// a 32-bit integer conversion applies. Results are computed in int64 so the
	// doubled tier cannot overflow.
	maxWholeAmount = math.MaxInt32
	// maxWholeDigits is the digit count of maxWholeAmount.
	maxWholeDigits = 10
)

var maxWholeDecimal = decimal.NewFromInt(maxWholeAmount)

// wholePart truncates amount toward zero and saturates at maxWholeAmount.
// Magnitude is judged from the coefficient digits and exponent first, so
// exponent forms like 1e2000000000 or 1e-2000000000 never get rescaled.
func wholePart(amount decimal.Decimal) int64 {
	if amount.IsZero() {
		return 0
	}
	intDigits := int64(amount.NumDigits()) + int64(amount.Exponent())
	switch {
	case intDigits <= 0:
		return 0
	case intDigits > maxWholeDigits:
		return maxWholeAmount
	case amount.GreaterThan(maxWholeDecimal):
		return maxWholeAmount
	default:
		return amount.Truncate(0).IntPart()
	}
}

// Calculate converts a purchase amount into reward points.
//
// The amount is truncated toward zero before tiering, so 100.99 earns the
// same as 100:
//
//	amount < 0        -> 0
//	whole in [0, 50]  -> 0
//	whole in [51,100] -> whole - 50
//	whole > 100       -> 50 + (whole - 100) * 2
func Calculate(amount decimal.Decimal) int64 {
	if amount.IsNegative() {
		return 0
	}

	whole := wholePart(amount)
	switch {
	case whole <= baseTierCeiling:
		return 0
	case whole <= upperTierCeiling:
		return whole - baseTierCeiling
	default:
		return upperTierPoints + (whole-upperTierCeiling)*2
	}
}
