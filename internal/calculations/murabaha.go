package calculations

import (
	"amanah-finance/internal/models"

	"github.com/shopspring/decimal"
)

// Murabaha calculates the headline figures for a cost-plus-profit sale.
// The profit is a flat mark-up fixed at origination:
//
//	totalSalePrice = costPrice x (1 + annualRate/100 x termMonths/12)
//
// The effective annual rate is the simple-interest-equivalent annualization
// of the flat profit over the financed amount.
func Murabaha(input models.CalculationInput) (*models.MurabahaSummary, error) {
	if input.CostPrice.LessThanOrEqual(decimal.Zero) {
		return nil, newInvalidInput("cost_price", "must be a positive amount")
	}
	if input.ProfitRate.IsNegative() {
		return nil, newInvalidInput("profit_rate", "must not be negative")
	}
	if input.TermMonths < 1 {
		return nil, newInvalidInput("term_months", "must be at least 1")
	}

	term := decimal.NewFromInt(int64(input.TermMonths))
	years := term.Div(twelve)

	profitAmount := percentOf(input.CostPrice, input.ProfitRate).Mul(years)
	totalSalePrice := input.CostPrice.Add(profitAmount)
	monthlyPayment := totalSalePrice.Div(term)

	effectiveRate := profitAmount.Div(input.CostPrice).Div(years).Mul(hundred)

	return &models.MurabahaSummary{
		CostPrice:           RoundMoney(input.CostPrice),
		TotalSalePrice:      RoundMoney(totalSalePrice),
		ProfitAmount:        RoundMoney(profitAmount),
		MonthlyPayment:      RoundMoney(monthlyPayment),
		EffectiveAnnualRate: RoundRate(effectiveRate),
		TermMonths:          input.TermMonths,
	}, nil
}
