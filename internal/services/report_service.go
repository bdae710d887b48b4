package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"amanah-finance/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrMissingCalculationResult = errors.New("calculation result is required to build a report")

type reportService struct {
	scheduleService ScheduleServiceInterface
	metrics         MetricsRecorderInterface
	defaultPageSize int
}

// NewReportService creates a report service. pageSize 0 falls back to
// DefaultReportPageSize.
func NewReportService(scheduleService ScheduleServiceInterface, metrics MetricsRecorderInterface, defaultPageSize int) ReportServiceInterface {
	if defaultPageSize < 1 {
		defaultPageSize = DefaultReportPageSize
	}
	return &reportService{
		scheduleService: scheduleService,
		metrics:         metrics,
		defaultPageSize: defaultPageSize,
	}
}

// BuildReport expands a calculation result into the paged amortization
// report handed to the rendering layer. Invoking it for a non-amortizing
// product is an integration error and returns ErrNonAmortizingProduct.
func (s *reportService) BuildReport(
	product models.ProductType,
	input models.CalculationInput,
	result *models.CalculationResult,
	startDate time.Time,
	pageSize int,
	lang string,
) (*models.AmortizationReport, error) {
	if !product.IsAmortizing() {
		s.recordReport(product, "rejected")
		return nil, fmt.Errorf("%w: %s", ErrNonAmortizingProduct, product)
	}
	if result == nil || result.Summary == nil {
		return nil, ErrMissingCalculationResult
	}

	params, err := scheduleParamsFor(product, input, result, startDate)
	if err != nil {
		s.recordReport(product, "error")
		return nil, err
	}

	schedule, err := s.scheduleService.GenerateSchedule(params, lang)
	if err != nil {
		s.recordReport(product, "error")
		return nil, err
	}

	if pageSize < 1 {
		pageSize = s.defaultPageSize
	}
	pages, err := PaginateSchedule(schedule.Entries, pageSize)
	if err != nil {
		s.recordReport(product, "error")
		return nil, err
	}

	report := &models.AmortizationReport{
		ReferenceID: newReportReference(),
		Product:     product,
		Summary:     result.Summary,
		Totals:      scheduleTotals(schedule.Entries, params.Principal, contractProfitFor(result)),
		Pages:       pages,
		PageSize:    pageSize,
		TotalPages:  len(pages),
		GeneratedAt: time.Now().UTC(),
	}

	if s.metrics != nil {
		s.metrics.RecordReport(product.String(), "success")
		s.metrics.ObserveReportPages(float64(len(pages)))
		s.metrics.ObserveScheduleLength(float64(len(schedule.Entries)))
	}

	slog.Info("amortization report built",
		"reference_id", report.ReferenceID,
		"product", product,
		"periods", len(schedule.Entries),
		"pages", len(pages))

	return report, nil
}

// scheduleParamsFor derives the generator parameters from the calculator
// output. For murabaha the financed principal is the cost price; for ijara
// it is the asset value less the ownership transfer value.
func scheduleParamsFor(
	product models.ProductType,
	input models.CalculationInput,
	result *models.CalculationResult,
	startDate time.Time,
) (models.ScheduleParams, error) {
	switch summary := result.Summary.(type) {
	case *models.MurabahaSummary:
		return models.ScheduleParams{
			Product:          product,
			Principal:        summary.CostPrice,
			AnnualProfitRate: input.ProfitRate,
			TermMonths:       summary.TermMonths,
			MonthlyPayment:   summary.MonthlyPayment,
			StartDate:        startDate,
		}, nil
	case *models.IjaraSummary:
		return models.ScheduleParams{
			Product:          product,
			Principal:        summary.AssetValue.Sub(summary.OwnershipTransferValue),
			AnnualProfitRate: input.ManagementFeePercent,
			TermMonths:       summary.LeaseTermMonths,
			MonthlyPayment:   summary.MonthlyRent,
			StartDate:        startDate,
		}, nil
	default:
		return models.ScheduleParams{}, fmt.Errorf("%w: %s", ErrNonAmortizingProduct, product)
	}
}

// contractProfitFor returns the profit figure disclosed at origination: the
// flat mark-up for murabaha, the rent in excess of the financed value for
// ijara. It sits alongside the ledger's accrued TotalProfit in the totals
// row; the two differ because the flat-markup payment stream is amortized
// on a declining balance.
func contractProfitFor(result *models.CalculationResult) decimal.Decimal {
	switch summary := result.Summary.(type) {
	case *models.MurabahaSummary:
		return summary.ProfitAmount
	case *models.IjaraSummary:
		financed := summary.AssetValue.Sub(summary.OwnershipTransferValue)
		return summary.TotalRent.Sub(financed)
	default:
		return decimal.Zero
	}
}

// scheduleTotals computes the synthetic totals row for the last page.
// TotalPrincipal equals the financed principal exactly because the final
// period clamp absorbs rounding residue.
func scheduleTotals(entries []models.AmortizationEntry, principal, contractProfit decimal.Decimal) models.ReportTotals {
	totalPayments := decimal.Zero
	for _, entry := range entries {
		totalPayments = totalPayments.Add(entry.Payment)
	}

	totals := models.ReportTotals{
		TotalPayments:  totalPayments,
		ContractProfit: contractProfit,
		TotalPrincipal: principal,
		FinalBalance:   decimal.Zero,
	}
	if len(entries) > 0 {
		last := entries[len(entries)-1]
		totals.TotalProfit = last.CumulativeProfit
		totals.TotalPrincipal = last.CumulativePrincipal
		totals.FinalBalance = last.EndingBalance
	}
	return totals
}

// newReportReference produces an opaque report reference for display and
// support lookups. It plays no part in any computation.
func newReportReference() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "RPT-" + id[:12]
}

func (s *reportService) recordReport(product models.ProductType, status string) {
	if s.metrics != nil {
		s.metrics.RecordReport(product.String(), status)
	}
}
