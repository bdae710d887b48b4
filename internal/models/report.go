package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportPage is one page of an amortization report. Entries is a contiguous
// slice of the source schedule; concatenating all pages in order reproduces
// the schedule exactly. The first page carries the summary block and the
// last page carries the totals row and disclaimers in the rendering layer.
type ReportPage struct {
	PageNumber  int                 `json:"page_number"`
	Entries     []AmortizationEntry `json:"entries"`
	IsFirstPage bool                `json:"is_first_page"`
	IsLastPage  bool                `json:"is_last_page"`
}

// ReportTotals is the synthetic totals row rendered on the last page.
// TotalProfit is the ledger's accrued profit over the schedule, while
// ContractProfit is the mark-up disclosed at origination; for a flat-markup
// payment stream amortized on a declining balance the two figures differ,
// and renderers show both.
type ReportTotals struct {
	TotalPayments  decimal.Decimal `json:"total_payments"`
	TotalProfit    decimal.Decimal `json:"total_profit"`
	ContractProfit decimal.Decimal `json:"contract_profit"`
	TotalPrincipal decimal.Decimal `json:"total_principal"`
	FinalBalance   decimal.Decimal `json:"final_balance"`
}

// AmortizationReport is the paged report handed to the rendering layer
type AmortizationReport struct {
	ReferenceID string       `json:"reference_id"`
	Product     ProductType  `json:"product"`
	Summary     any          `json:"summary"`
	Totals      ReportTotals `json:"totals"`
	Pages       []ReportPage `json:"pages"`
	PageSize    int          `json:"page_size"`
	TotalPages  int          `json:"total_pages"`
	GeneratedAt time.Time    `json:"generated_at"`
}
