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

type CalculationHandler struct {
	metrics services.MetricsRecorderInterface
}

func NewCalculationHandler(metrics services.MetricsRecorderInterface) *CalculationHandler {
	return &CalculationHandler{metrics: metrics}
}

// Calculate runs a product calculation and returns the headline results
//
// Method: POST /api/v1/calculations
//
// Request body:
//   - product: one of murabaha, ijara, sukuk, zakat (required)
//   - the product's named parameters (cost_price, profit_rate, ...)
//
// Success Response: 200 OK
//   - data: { product, summary, generated_at }
//
// Error Responses:
//   - 400: Malformed body or failed validation rules
//   - 404: PRODUCT_001 - Unknown product type
//   - 422: CALC_001 - Missing, negative, or structurally invalid parameters
//   - 500: Internal server error
func (h *CalculationHandler) Calculate(c echo.Context) error {
	var req dto.CalculationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("request body must be valid JSON"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	started := time.Now()
	result, err := calculations.Calculate(req.ProductType(), req.ToInput())
	h.observeDuration(started)

	if err != nil {
		h.recordCalculation(req.Product, "error")
		return h.handleCalculationError(c, err)
	}

	h.recordCalculation(req.Product, "success")

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: result,
	})
}

func (h *CalculationHandler) handleCalculationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, calculations.ErrUnknownProduct):
		return SendError(c, apierrors.ProductUnknown, apierrors.WithDetails(err.Error()))
	case calculations.IsInvalidInput(err):
		return SendError(c, apierrors.CalcInvalidInput, apierrors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}

func (h *CalculationHandler) recordCalculation(product, status string) {
	if h.metrics != nil {
		h.metrics.RecordCalculation(product, status)
	}
}

func (h *CalculationHandler) observeDuration(started time.Time) {
	if h.metrics != nil {
		h.metrics.ObserveCalculationDuration(float64(time.Since(started).Microseconds()) / 1000.0)
	}
}
