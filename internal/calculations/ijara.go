package calculations

import (
	"amanah-finance/internal/models"

	"github.com/shopspring/decimal"
)

// Ijara calculates the headline figures for a lease-to-own arrangement.
// The monthly rent amortizes the asset value less its residual over the
// lease term, plus a management fee accrued monthly on the asset value.
// At the end of the lease, ownership transfers at the residual value.
func Ijara(input models.CalculationInput) (*models.IjaraSummary, error) {
	if input.AssetValue.LessThanOrEqual(decimal.Zero) {
		return nil, newInvalidInput("asset_value", "must be a positive amount")
	}
	if input.ResidualPercent.IsNegative() || input.ResidualPercent.GreaterThanOrEqual(hundred) {
		return nil, newInvalidInput("residual_percent", "must be between 0 and 100")
	}
	if input.ManagementFeePercent.IsNegative() {
		return nil, newInvalidInput("management_fee_percent", "must not be negative")
	}
	if input.LeaseTermMonths < 1 {
		return nil, newInvalidInput("lease_term_months", "must be at least 1")
	}

	term := decimal.NewFromInt(int64(input.LeaseTermMonths))

	ownershipTransferValue := percentOf(input.AssetValue, input.ResidualPercent)
	depreciable := input.AssetValue.Sub(ownershipTransferValue)

	baseRent := depreciable.Div(term)
	monthlyFee := percentOf(input.AssetValue, input.ManagementFeePercent).Div(twelve)
	monthlyRent := baseRent.Add(monthlyFee)

	totalRent := monthlyRent.Mul(term)
	totalCost := totalRent.Add(ownershipTransferValue)

	return &models.IjaraSummary{
		AssetValue:             RoundMoney(input.AssetValue),
		MonthlyRent:            RoundMoney(monthlyRent),
		OwnershipTransferValue: RoundMoney(ownershipTransferValue),
		TotalRent:              RoundMoney(totalRent),
		TotalCost:              RoundMoney(totalCost),
		LeaseTermMonths:        input.LeaseTermMonths,
	}, nil
}
