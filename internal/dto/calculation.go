package dto

import (
	"amanah-finance/internal/models"

	"github.com/shopspring/decimal"
)

// CalculationRequest carries the named parameters for a product
// calculation. Only the fields for the requested product need to be set;
// the product's calculator enforces its own required set. Rates are annual
// percentages.
type CalculationRequest struct {
	Product string `json:"product" validate:"required,product_type"`

	// Murabaha
	CostPrice  float64 `json:"cost_price" validate:"omitempty,monetary_amount"`
	ProfitRate float64 `json:"profit_rate" validate:"omitempty,profit_rate"`
	TermMonths int     `json:"term_months" validate:"omitempty,term_months"`

	// Ijara
	AssetValue           float64 `json:"asset_value" validate:"omitempty,monetary_amount"`
	ResidualPercent      float64 `json:"residual_percent" validate:"omitempty,min=0,max=100"`
	ManagementFeePercent float64 `json:"management_fee_percent" validate:"omitempty,profit_rate"`
	LeaseTermMonths      int     `json:"lease_term_months" validate:"omitempty,term_months"`

	// Sukuk
	FaceValue       float64 `json:"face_value" validate:"omitempty,monetary_amount"`
	CouponRate      float64 `json:"coupon_rate" validate:"omitempty,profit_rate"`
	CurrentPrice    float64 `json:"current_price" validate:"omitempty,monetary_amount"`
	YearsToMaturity float64 `json:"years_to_maturity" validate:"omitempty,min=0"`

	// Zakat
	Cash             float64 `json:"cash" validate:"omitempty,monetary_amount"`
	GoldValue        float64 `json:"gold_value" validate:"omitempty,monetary_amount"`
	SilverValue      float64 `json:"silver_value" validate:"omitempty,monetary_amount"`
	Investments      float64 `json:"investments" validate:"omitempty,monetary_amount"`
	BusinessAssets   float64 `json:"business_assets" validate:"omitempty,monetary_amount"`
	Liabilities      float64 `json:"liabilities" validate:"omitempty,monetary_amount"`
	GoldPricePerGram float64 `json:"gold_price_per_gram" validate:"omitempty,monetary_amount"`
}

// ProductType returns the typed product for the request
func (r *CalculationRequest) ProductType() models.ProductType {
	return models.ProductType(r.Product)
}

// ToInput converts the request's float fields into the decimal calculation
// input used by the engine
func (r *CalculationRequest) ToInput() models.CalculationInput {
	return models.CalculationInput{
		CostPrice:  decimal.NewFromFloat(r.CostPrice),
		ProfitRate: decimal.NewFromFloat(r.ProfitRate),
		TermMonths: r.TermMonths,

		AssetValue:           decimal.NewFromFloat(r.AssetValue),
		ResidualPercent:      decimal.NewFromFloat(r.ResidualPercent),
		ManagementFeePercent: decimal.NewFromFloat(r.ManagementFeePercent),
		LeaseTermMonths:      r.LeaseTermMonths,

		FaceValue:       decimal.NewFromFloat(r.FaceValue),
		CouponRate:      decimal.NewFromFloat(r.CouponRate),
		CurrentPrice:    decimal.NewFromFloat(r.CurrentPrice),
		YearsToMaturity: decimal.NewFromFloat(r.YearsToMaturity),

		Cash:             decimal.NewFromFloat(r.Cash),
		GoldValue:        decimal.NewFromFloat(r.GoldValue),
		SilverValue:      decimal.NewFromFloat(r.SilverValue),
		Investments:      decimal.NewFromFloat(r.Investments),
		BusinessAssets:   decimal.NewFromFloat(r.BusinessAssets),
		Liabilities:      decimal.NewFromFloat(r.Liabilities),
		GoldPricePerGram: decimal.NewFromFloat(r.GoldPricePerGram),
	}
}
