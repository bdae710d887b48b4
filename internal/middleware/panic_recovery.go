package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"amanah-finance/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts a panic anywhere below it in the chain into a
// SYSTEM_001 response. A bug in one calculator or in the schedule loop must
// not take the whole API down, and the panic value must never leak to the
// client; it goes to the log with the stack and trace ID instead.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				slog.Error("panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"stack", string(debug.Stack()),
				)

				response := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if err := c.JSON(http.StatusInternalServerError, response); err != nil {
					slog.Error("failed to write panic response",
						"trace_id", traceID,
						"error", err.Error(),
					)
				}
			}()

			return next(c)
		}
	}
}
