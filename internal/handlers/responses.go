package handlers

import (
	"net/http"

	"amanah-finance/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers reply through two helpers so every failure carries the same
// envelope: SendError for client and business failures (an unknown product,
// a non-amortizing product asked for a report, a rejected input), and
// SendSystemError when an internal error must stay server-side. Handlers do
// not call echo.NewHTTPError or write error JSON directly.

// TraceIDContextKey mirrors the middleware context key so handlers can read
// the trace ID without importing the middleware package
const TraceIDContextKey = "trace_id"

// SuccessResponse wraps successful payloads: the calculation summary or the
// report in Data, optional human text in Message, paging info in Meta.
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse aliases the shared envelope for handler tests
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}

// SendError writes the envelope for code at its mapped status, tagged with
// the request's trace ID.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	response := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(response.GetHTTPStatus(), response)
}

// SendSystemError answers with a generic SYSTEM_001 envelope. The original
// error is discarded here; callers log it before calling.
func SendSystemError(c echo.Context, err error) error {
	response, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, response)
}
