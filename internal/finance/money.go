package finance

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent returns part/whole*100, or 0 when whole is zero.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}
