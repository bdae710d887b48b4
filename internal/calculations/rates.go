package calculations

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
	two     = decimal.NewFromInt(2)
)

// MonthlyRate converts an annual percentage rate to a monthly periodic rate.
// No day-count convention is applied; the model is a flat annual/12 split.
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.Div(hundred).Div(twelve)
}

// RoundMoney rounds a monetary amount to 2 decimal places
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// RoundRate rounds a percentage rate to 4 decimal places for display
func RoundRate(d decimal.Decimal) decimal.Decimal {
	return d.Round(4)
}

// percentOf returns value x percent / 100
func percentOf(value, percent decimal.Decimal) decimal.Decimal {
	return value.Mul(percent).Div(hundred)
}
