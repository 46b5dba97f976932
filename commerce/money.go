package commerce

import "github.com/shopspring/decimal"

var (
	Two     = decimal.NewFromInt(2)
	Hundred = decimal.NewFromInt(100)
)

// LineTotal is unit price times quantity.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// PercentOff returns amount reduced by percent (0-100).
func PercentOff(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Sub(amount.Mul(percent).Div(Hundred))
}

// FormatAmount renders an amount with two decimal places for display.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
