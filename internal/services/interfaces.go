package services

import (
	"time"

	"amanah-finance/internal/models"
)

// ScheduleServiceInterface expands a financing arrangement into the full
// period-by-period amortization ledger
type ScheduleServiceInterface interface {
	GenerateSchedule(params models.ScheduleParams, lang string) (*models.Schedule, error)
}

// ReportServiceInterface builds paged amortization reports for the
// rendering layer. Only amortizing products (murabaha, ijara) are valid.
type ReportServiceInterface interface {
	BuildReport(product models.ProductType, input models.CalculationInput, result *models.CalculationResult, startDate time.Time, pageSize int, lang string) (*models.AmortizationReport, error)
}

// HijriDateFormatterInterface converts a Gregorian date into a Hijri
// display string for a language tag. Implemented outside the numeric core
// and injected so schedules can be generated without a locale runtime.
type HijriDateFormatterInterface interface {
	FormatHijri(t time.Time, lang string) string
}

// MetricsRecorderInterface abstracts metrics collection for calculations
// and report generation
type MetricsRecorderInterface interface {
	RecordCalculation(product, status string)
	ObserveCalculationDuration(durationMs float64)
	RecordReport(product, status string)
	ObserveReportPages(pages float64)
	ObserveScheduleLength(periods float64)
}
