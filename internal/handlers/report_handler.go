package handlers

import (
	"errors"
	"net/http"
	"time"

	"amanah-finance/internal/calculations"
	"amanah-finance/internal/dto"
	apierrors "amanah-finance/internal/errors"
	"amanah-finance/internal/services"

	"github.com/labstack/echo/v4"
)

// startDateLayout is the accepted wire format for report start dates
const startDateLayout = "2006-01-02"

type ReportHandler struct {
	reportService services.ReportServiceInterface
	metrics       services.MetricsRecorderInterface
}

func NewReportHandler(reportService services.ReportServiceInterface, metrics services.MetricsRecorderInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService, metrics: metrics}
}

// BuildReport generates the paged amortization report for an amortizing
// financing product
//
// Method: POST /api/v1/reports
//
// Request body:
//   - product: murabaha or ijara (required)
//   - the product's financing parameters
//   - start_date: financing start, 2006-01-02 form (required)
//   - page_size: rows per report page (optional, default 15)
//   - language: BCP 47 tag for Hijri/display dates (optional)
//
// Success Response: 200 OK
//   - data: { reference_id, product, summary, totals, pages, ... }
//
// Error Responses:
//   - 400: Malformed body, bad start_date, or failed validation rules
//   - 404: PRODUCT_001 - Unknown product type
//   - 422: PRODUCT_002 - Product does not amortize (sukuk, zakat)
//   - 422: CALC_001 - Missing, negative, or structurally invalid parameters
//   - 500: Internal server error
func (h *ReportHandler) BuildReport(c echo.Context) error {
	var req dto.ReportRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("request body must be valid JSON"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	product := req.ProductType()
	if !product.IsAmortizing() {
		return SendError(c, apierrors.ProductNotAmortizing)
	}

	startDate, err := time.Parse(startDateLayout, req.StartDate)
	if err != nil {
		return SendError(c, apierrors.ReportInvalidStartDate, apierrors.WithDetails("start_date must use the 2006-01-02 form"))
	}

	input := req.ToInput()

	result, err := calculations.Calculate(product, input)
	if err != nil {
		return h.handleReportError(c, err)
	}

	report, err := h.reportService.BuildReport(product, input, result, startDate, req.PageSize, req.Language)
	if err != nil {
		return h.handleReportError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: report,
	})
}

func (h *ReportHandler) handleReportError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, calculations.ErrUnknownProduct):
		return SendError(c, apierrors.ProductUnknown, apierrors.WithDetails(err.Error()))
	case calculations.IsInvalidInput(err):
		return SendError(c, apierrors.CalcInvalidInput, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrNonAmortizingProduct):
		return SendError(c, apierrors.ProductNotAmortizing)
	case errors.Is(err, services.ErrInvalidPageSize):
		return SendError(c, apierrors.ReportInvalidPageSize)
	case errors.Is(err, services.ErrInvalidPrincipal),
		errors.Is(err, services.ErrInvalidTerm),
		errors.Is(err, services.ErrInvalidPayment),
		errors.Is(err, services.ErrPaymentTooSmall):
		return SendError(c, apierrors.CalcInvalidInput, apierrors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
