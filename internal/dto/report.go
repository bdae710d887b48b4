package dto

// ReportRequest asks for a paged amortization report. Valid only for the
// amortizing products (murabaha, ijara); the embedded calculation request
// supplies the financing parameters.
type ReportRequest struct {
	CalculationRequest

	// StartDate is the financing start in ISO 8601 date form (2006-01-02);
	// the first payment falls one calendar month later
	StartDate string `json:"start_date" validate:"required"`

	// PageSize overrides the configured rows-per-page; 0 uses the default
	PageSize int `json:"page_size" validate:"omitempty,min=1,max=500"`

	// Language selects the Hijri date and display locale, e.g. "ar" or "en"
	Language string `json:"language" validate:"omitempty,bcp47_language_tag"`
}
