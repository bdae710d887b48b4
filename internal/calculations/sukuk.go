package calculations

import (
	"amanah-finance/internal/models"

	"github.com/shopspring/decimal"
)

// Sukuk calculates closed-form yield metrics for an Islamic certificate.
//
// The yield to maturity uses the standard approximation blending annual
// coupon income with the price-to-par convergence over the remaining life:
//
//	ytm = (coupon + (face - price) / years) / ((face + price) / 2)
//
// This is an illustrative estimate, not an iterative solver. The estimation
// intent is deliberate; do not replace it with root finding.
func Sukuk(input models.CalculationInput) (*models.SukukSummary, error) {
	if input.FaceValue.LessThanOrEqual(decimal.Zero) {
		return nil, newInvalidInput("face_value", "must be a positive amount")
	}
	if input.CouponRate.IsNegative() {
		return nil, newInvalidInput("coupon_rate", "must not be negative")
	}
	if input.CurrentPrice.LessThanOrEqual(decimal.Zero) {
		return nil, newInvalidInput("current_price", "must be a positive amount")
	}
	if input.YearsToMaturity.LessThanOrEqual(decimal.Zero) {
		return nil, newInvalidInput("years_to_maturity", "must be positive")
	}

	annualCoupon := percentOf(input.FaceValue, input.CouponRate)
	currentYield := annualCoupon.Div(input.CurrentPrice).Mul(hundred)

	parConvergence := input.FaceValue.Sub(input.CurrentPrice).Div(input.YearsToMaturity)
	averagePrice := input.FaceValue.Add(input.CurrentPrice).Div(two)
	yieldToMaturity := annualCoupon.Add(parConvergence).Div(averagePrice).Mul(hundred)

	return &models.SukukSummary{
		AnnualCoupon:    RoundMoney(annualCoupon),
		CurrentYield:    RoundRate(currentYield),
		YieldToMaturity: RoundRate(yieldToMaturity),
		PremiumDiscount: RoundMoney(input.CurrentPrice.Sub(input.FaceValue)),
	}, nil
}
