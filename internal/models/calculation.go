package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculationInput holds the named parameters for a product calculation.
// Only the fields relevant to the requested product are read; the calculator
// for each product validates its own required set. All rate fields are
// annual percentages (10 means 10% p.a.).
type CalculationInput struct {
	// Murabaha
	CostPrice  decimal.Decimal `json:"cost_price"`
	ProfitRate decimal.Decimal `json:"profit_rate"`
	TermMonths int             `json:"term_months"`

	// Ijara
	AssetValue           decimal.Decimal `json:"asset_value"`
	ResidualPercent      decimal.Decimal `json:"residual_percent"`
	ManagementFeePercent decimal.Decimal `json:"management_fee_percent"`
	LeaseTermMonths      int             `json:"lease_term_months"`

	// Sukuk
	FaceValue       decimal.Decimal `json:"face_value"`
	CouponRate      decimal.Decimal `json:"coupon_rate"`
	CurrentPrice    decimal.Decimal `json:"current_price"`
	YearsToMaturity decimal.Decimal `json:"years_to_maturity"`

	// Zakat
	Cash             decimal.Decimal `json:"cash"`
	GoldValue        decimal.Decimal `json:"gold_value"`
	SilverValue      decimal.Decimal `json:"silver_value"`
	Investments      decimal.Decimal `json:"investments"`
	BusinessAssets   decimal.Decimal `json:"business_assets"`
	Liabilities      decimal.Decimal `json:"liabilities"`
	GoldPricePerGram decimal.Decimal `json:"gold_price_per_gram"`
}

// MurabahaSummary holds the headline results for a cost-plus-profit sale
type MurabahaSummary struct {
	CostPrice           decimal.Decimal `json:"cost_price"`
	TotalSalePrice      decimal.Decimal `json:"total_sale_price"`
	ProfitAmount        decimal.Decimal `json:"profit_amount"`
	MonthlyPayment      decimal.Decimal `json:"monthly_payment"`
	EffectiveAnnualRate decimal.Decimal `json:"effective_annual_rate"`
	TermMonths          int             `json:"term_months"`
}

// IjaraSummary holds the headline results for a lease-to-own arrangement
type IjaraSummary struct {
	AssetValue             decimal.Decimal `json:"asset_value"`
	MonthlyRent            decimal.Decimal `json:"monthly_rent"`
	OwnershipTransferValue decimal.Decimal `json:"ownership_transfer_value"`
	TotalRent              decimal.Decimal `json:"total_rent"`
	TotalCost              decimal.Decimal `json:"total_cost"`
	LeaseTermMonths        int             `json:"lease_term_months"`
}

// SukukSummary holds the headline yield metrics for an Islamic certificate.
// YieldToMaturity is a simple approximation blending coupon income with
// price-to-par convergence; it is intentionally not an iterative solver.
type SukukSummary struct {
	AnnualCoupon    decimal.Decimal `json:"annual_coupon"`
	CurrentYield    decimal.Decimal `json:"current_yield"`
	YieldToMaturity decimal.Decimal `json:"yield_to_maturity"`
	PremiumDiscount decimal.Decimal `json:"premium_discount"`
}

// ZakatSummary holds the result of a zakat obligation calculation
type ZakatSummary struct {
	TotalAssets     decimal.Decimal `json:"total_assets"`
	NetWealth       decimal.Decimal `json:"net_wealth"`
	Nisab           decimal.Decimal `json:"nisab"`
	IsZakatRequired bool            `json:"is_zakat_required"`
	ZakatDue        decimal.Decimal `json:"zakat_due"`
}

// CalculationResult is the product-tagged outcome of a calculation.
// Summary holds one of the typed per-product summaries above.
type CalculationResult struct {
	Product     ProductType `json:"product"`
	Summary     any         `json:"summary"`
	GeneratedAt time.Time   `json:"generated_at"`
}
