package calculations

import (
	"amanah-finance/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// NisabGoldGrams is the nisab threshold expressed in grams of gold
	NisabGoldGrams = 85
)

// zakatRate is the obligatory rate of 2.5% applied above the nisab
var zakatRate = decimal.NewFromFloat(0.025)

// Zakat calculates the zakat obligation across the supported asset
// categories. Zakat is due only when net wealth meets or exceeds the nisab,
// valued at the current gold price.
func Zakat(input models.CalculationInput) (*models.ZakatSummary, error) {
	categories := map[string]decimal.Decimal{
		"cash":                input.Cash,
		"gold_value":          input.GoldValue,
		"silver_value":        input.SilverValue,
		"investments":         input.Investments,
		"business_assets":     input.BusinessAssets,
		"liabilities":         input.Liabilities,
		"gold_price_per_gram": input.GoldPricePerGram,
	}
	for field, value := range categories {
		if value.IsNegative() {
			return nil, newInvalidInput(field, "must not be negative")
		}
	}
	if input.GoldPricePerGram.IsZero() {
		return nil, newInvalidInput("gold_price_per_gram", "must be a positive amount")
	}

	totalAssets := input.Cash.
		Add(input.GoldValue).
		Add(input.SilverValue).
		Add(input.Investments).
		Add(input.BusinessAssets)

	netWealth := totalAssets.Sub(input.Liabilities)
	nisab := input.GoldPricePerGram.Mul(decimal.NewFromInt(NisabGoldGrams))

	isRequired := netWealth.GreaterThanOrEqual(nisab)
	zakatDue := decimal.Zero
	if isRequired {
		zakatDue = netWealth.Mul(zakatRate)
	}

	return &models.ZakatSummary{
		TotalAssets:     RoundMoney(totalAssets),
		NetWealth:       RoundMoney(netWealth),
		Nisab:           RoundMoney(nisab),
		IsZakatRequired: isRequired,
		ZakatDue:        RoundMoney(zakatDue),
	}, nil
}
