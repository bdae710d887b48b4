package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleParams describes a financing arrangement to be expanded into an
// amortization schedule. Principal and MonthlyPayment must be positive and
// TermMonths at least 1; the schedule service enforces these invariants.
type ScheduleParams struct {
	Product          ProductType     `json:"product"`
	Principal        decimal.Decimal `json:"principal"`
	AnnualProfitRate decimal.Decimal `json:"annual_profit_rate"`
	TermMonths       int             `json:"term_months"`
	MonthlyPayment   decimal.Decimal `json:"monthly_payment"`
	StartDate        time.Time       `json:"start_date"`
}

// AmortizationEntry is one period's row in the financing ledger.
//
// Per-entry invariants:
//   - ProfitPortion = BeginningBalance x (AnnualProfitRate / 100 / 12)
//   - PrincipalPortion = Payment - ProfitPortion (final period clamped so
//     EndingBalance is exactly zero)
//   - CumulativeProfit and CumulativePrincipal are running sums
type AmortizationEntry struct {
	Period              int             `json:"period"`
	DueDate             time.Time       `json:"due_date"`
	DueDateHijri        string          `json:"due_date_hijri,omitempty"`
	BeginningBalance    decimal.Decimal `json:"beginning_balance"`
	Payment             decimal.Decimal `json:"payment"`
	ProfitPortion       decimal.Decimal `json:"profit_portion"`
	PrincipalPortion    decimal.Decimal `json:"principal_portion"`
	EndingBalance       decimal.Decimal `json:"ending_balance"`
	CumulativeProfit    decimal.Decimal `json:"cumulative_profit"`
	CumulativePrincipal decimal.Decimal `json:"cumulative_principal"`
}

// Schedule is the full ordered ledger for one financing arrangement.
// It is built once per report request and never mutated or persisted.
type Schedule struct {
	Params      ScheduleParams      `json:"params"`
	Entries     []AmortizationEntry `json:"entries"`
	GeneratedAt time.Time           `json:"generated_at"`
}
