package calculations

import (
	"testing"

	"amanah-finance/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSukuk_AtPar(t *testing.T) {
	input := models.CalculationInput{
		FaceValue:       decimal.NewFromInt(1000),
		CouponRate:      decimal.NewFromInt(5),
		CurrentPrice:    decimal.NewFromInt(1000),
		YearsToMaturity: decimal.NewFromInt(5),
	}

	summary, err := Sukuk(input)
	require.NoError(t, err)

	assert.Equal(t, "50.00", summary.AnnualCoupon.StringFixed(2))
	// At par, current yield and YTM both equal the coupon rate
	assert.Equal(t, "5.0000", summary.CurrentYield.StringFixed(4))
	assert.Equal(t, "5.0000", summary.YieldToMaturity.StringFixed(4))
	assert.True(t, summary.PremiumDiscount.IsZero())
}

func TestSukuk_AtDiscount(t *testing.T) {
	input := models.CalculationInput{
		FaceValue:       decimal.NewFromInt(1000),
		CouponRate:      decimal.NewFromInt(5),
		CurrentPrice:    decimal.NewFromInt(950),
		YearsToMaturity: decimal.NewFromInt(5),
	}

	summary, err := Sukuk(input)
	require.NoError(t, err)

	// coupon 50 on a 950 price
	assert.Equal(t, "5.2632", summary.CurrentYield.StringFixed(4))
	// (50 + 50/5) / 975 — approximation, not a solved YTM
	assert.Equal(t, "6.1538", summary.YieldToMaturity.StringFixed(4))
	assert.Equal(t, "-50.00", summary.PremiumDiscount.StringFixed(2))
}

func TestSukuk_AtPremium(t *testing.T) {
	input := models.CalculationInput{
		FaceValue:       decimal.NewFromInt(1000),
		CouponRate:      decimal.NewFromInt(6),
		CurrentPrice:    decimal.NewFromInt(1050),
		YearsToMaturity: decimal.NewFromInt(10),
	}

	summary, err := Sukuk(input)
	require.NoError(t, err)

	assert.True(t, summary.YieldToMaturity.LessThan(summary.CurrentYield),
		"premium sukuk yields less to maturity than its current yield")
	assert.Equal(t, "50.00", summary.PremiumDiscount.StringFixed(2))
}

func TestSukuk_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input models.CalculationInput
		field string
	}{
		{
			name: "missing face value",
			input: models.CalculationInput{
				CouponRate: decimal.NewFromInt(5), CurrentPrice: decimal.NewFromInt(950), YearsToMaturity: decimal.NewFromInt(5),
			},
			field: "face_value",
		},
		{
			name: "zero current price",
			input: models.CalculationInput{
				FaceValue: decimal.NewFromInt(1000), CouponRate: decimal.NewFromInt(5), YearsToMaturity: decimal.NewFromInt(5),
			},
			field: "current_price",
		},
		{
			name: "zero years to maturity",
			input: models.CalculationInput{
				FaceValue: decimal.NewFromInt(1000), CouponRate: decimal.NewFromInt(5), CurrentPrice: decimal.NewFromInt(950),
			},
			field: "years_to_maturity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := Sukuk(tt.input)
			assert.Nil(t, summary)

			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}
