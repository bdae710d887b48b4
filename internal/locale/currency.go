package locale

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyFormatter renders monetary amounts for display using CLDR locale
// data. It is presentation glue only; all arithmetic stays in decimal.
type CurrencyFormatter struct {
	defaultLang string
	defaultUnit currency.Unit
}

// NewCurrencyFormatter creates a formatter for the given default language
// and ISO 4217 currency code. An unknown code falls back to USD.
func NewCurrencyFormatter(defaultLang, currencyCode string) *CurrencyFormatter {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		unit = currency.USD
	}
	if defaultLang == "" {
		defaultLang = "en"
	}
	return &CurrencyFormatter{defaultLang: defaultLang, defaultUnit: unit}
}

// FormatAmount renders an amount with the currency symbol in the requested
// language, e.g. "SAR 9,166.67". Unparseable language tags fall back to the
// formatter's default language.
func (f *CurrencyFormatter) FormatAmount(amount decimal.Decimal, lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Make(f.defaultLang)
	}

	p := message.NewPrinter(tag)
	return p.Sprintf("%v %v",
		currency.Symbol(f.defaultUnit),
		number.Decimal(amount.InexactFloat64(), number.MinFractionDigits(2), number.MaxFractionDigits(2)),
	)
}

// FormatNumber renders a plain localized number with two fraction digits
func (f *CurrencyFormatter) FormatNumber(amount decimal.Decimal, lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Make(f.defaultLang)
	}

	p := message.NewPrinter(tag)
	return p.Sprintf("%v",
		number.Decimal(amount.InexactFloat64(), number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
