package services

import (
	"errors"
	"log/slog"
	"time"

	"amanah-finance/internal/calculations"
	"amanah-finance/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrNonAmortizingProduct = errors.New("product does not amortize")
	ErrInvalidPrincipal     = errors.New("principal must be positive")
	ErrInvalidTerm          = errors.New("term must be at least one month")
	ErrInvalidPayment       = errors.New("monthly payment must be positive")
	ErrPaymentTooSmall      = errors.New("monthly payment does not cover accrued profit")
)

type scheduleService struct {
	hijriFormatter HijriDateFormatterInterface
}

// NewScheduleService creates a schedule service. The Hijri formatter is an
// optional display capability; passing nil omits Hijri dates from entries.
func NewScheduleService(hijriFormatter HijriDateFormatterInterface) ScheduleServiceInterface {
	return &scheduleService{hijriFormatter: hijriFormatter}
}

// GenerateSchedule expands the financing params into the full ledger.
//
// Each period accrues profit on the outstanding balance at a flat
// annualRate/12 periodic rate (no day-count convention), then retires
// principal with the remainder of the payment. The final period absorbs any
// sub-cent residual from upstream rounding so the ending balance is exactly
// zero; it never goes negative. Due dates advance by calendar months from
// the start date, so month lengths and year rollovers follow the civil
// calendar.
func (s *scheduleService) GenerateSchedule(params models.ScheduleParams, lang string) (*models.Schedule, error) {
	if !params.Product.IsAmortizing() {
		return nil, ErrNonAmortizingProduct
	}
	if params.Principal.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrincipal
	}
	if params.TermMonths < 1 {
		return nil, ErrInvalidTerm
	}
	if params.MonthlyPayment.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPayment
	}

	monthlyRate := calculations.MonthlyRate(params.AnnualProfitRate)
	payment := calculations.RoundMoney(params.MonthlyPayment)

	balance := calculations.RoundMoney(params.Principal)

	// A payment below the first period's profit would push the principal
	// portion negative and make the balance grow, so the ledger refuses it.
	// The calculators always derive payments above this floor; the guard is
	// for direct callers.
	if payment.LessThan(calculations.RoundMoney(balance.Mul(monthlyRate))) {
		return nil, ErrPaymentTooSmall
	}

	cumulativeProfit := decimal.Zero
	cumulativePrincipal := decimal.Zero

	entries := make([]models.AmortizationEntry, 0, params.TermMonths)

	for period := 1; period <= params.TermMonths; period++ {
		beginning := balance

		profit := calculations.RoundMoney(balance.Mul(monthlyRate))
		principal := calculations.RoundMoney(payment.Sub(profit))

		// The final period retires whatever is left; earlier periods never
		// retire more than the outstanding balance.
		if period == params.TermMonths || principal.GreaterThan(balance) {
			principal = balance
		}

		balance = beginning.Sub(principal)
		cumulativeProfit = cumulativeProfit.Add(profit)
		cumulativePrincipal = cumulativePrincipal.Add(principal)

		dueDate := params.StartDate.AddDate(0, period, 0)

		entry := models.AmortizationEntry{
			Period:              period,
			DueDate:             dueDate,
			BeginningBalance:    beginning,
			Payment:             payment,
			ProfitPortion:       profit,
			PrincipalPortion:    principal,
			EndingBalance:       balance,
			CumulativeProfit:    cumulativeProfit,
			CumulativePrincipal: cumulativePrincipal,
		}
		if s.hijriFormatter != nil {
			entry.DueDateHijri = s.hijriFormatter.FormatHijri(dueDate, lang)
		}

		entries = append(entries, entry)
	}

	slog.Info("amortization schedule generated",
		"product", params.Product,
		"term_months", params.TermMonths,
		"principal", params.Principal,
		"total_profit", cumulativeProfit)

	return &models.Schedule{
		Params:      params,
		Entries:     entries,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
