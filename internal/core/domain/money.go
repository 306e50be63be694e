package domain

import "github.com/shopspring/decimal"

// ProUpgradeThreshold is the smallest successful subscription payment that
// moves a company to the Pro tier.
var ProUpgradeThreshold = decimal.NewFromInt(499)

// MaxAmount is the largest monetary value storage holds (NUMERIC(12,2)).
var MaxAmount = decimal.RequireFromString("9999999999.99")

// ValidAmount reports whether d is a non-negative monetary value with at most
// two decimal places that fits in storage.
func ValidAmount(d decimal.Decimal) bool {
	if d.IsNegative() || d.GreaterThan(MaxAmount) {
		return false
	}
	return d.Equal(d.Truncate(2))
}
