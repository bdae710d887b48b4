package locale

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatNumber_English(t *testing.T) {
	f := NewCurrencyFormatter("en", "USD")

	assert.Equal(t, "9,166.67", f.FormatNumber(decimal.NewFromFloat(9166.67), "en"))
	assert.Equal(t, "1,000,000.00", f.FormatNumber(decimal.NewFromInt(1000000), "en"))
	assert.Equal(t, "0.00", f.FormatNumber(decimal.Zero, "en"))
}

func TestFormatAmount_CarriesCurrencySymbol(t *testing.T) {
	f := NewCurrencyFormatter("en", "SAR")

	formatted := f.FormatAmount(decimal.NewFromFloat(9166.67), "en")
	assert.Contains(t, formatted, "9,166.67")
	assert.Contains(t, formatted, "SAR")
}

func TestFormatAmount_ArabicLocale(t *testing.T) {
	f := NewCurrencyFormatter("en", "SAR")

	// Arabic rendering differs from English; exact digits depend on CLDR data
	formatted := f.FormatAmount(decimal.NewFromFloat(9166.67), "ar")
	assert.NotEmpty(t, formatted)
	assert.NotEqual(t, f.FormatAmount(decimal.NewFromFloat(9166.67), "en"), formatted)
}

func TestFormatNumber_BadLanguageFallsBack(t *testing.T) {
	f := NewCurrencyFormatter("en", "USD")

	assert.Equal(t,
		f.FormatNumber(decimal.NewFromFloat(1234.5), "en"),
		f.FormatNumber(decimal.NewFromFloat(1234.5), "not a tag"))
}

func TestNewCurrencyFormatter_UnknownCodeFallsBackToUSD(t *testing.T) {
	f := NewCurrencyFormatter("en", "NOTREAL")

	formatted := f.FormatAmount(decimal.NewFromFloat(10), "en")
	assert.Contains(t, formatted, "$")
}
