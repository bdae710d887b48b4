package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCalculationRequest builds the request shape the middleware chain sees
// in front of the calculation endpoint.
func newCalculationRequest() *http.Request {
	body := `{"product":"murabaha","cost_price":100000,"profit_rate":10,"term_months":12}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestRequestIDIssuesTraceID(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newCalculationRequest(), rec)

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	require.NotEmpty(t, seen)

	_, err := uuid.Parse(seen)
	assert.NoError(t, err, "issued trace IDs are UUIDs")
	assert.Equal(t, seen, rec.Header().Get(TraceIDHeader))
}

func TestRequestIDHonorsCallerTraceID(t *testing.T) {
	e := echo.New()
	req := newCalculationRequest()
	req.Header.Set(TraceIDHeader, "gateway-trace-42")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		assert.Equal(t, "gateway-trace-42", GetTraceID(c))
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "gateway-trace-42", rec.Header().Get(TraceIDHeader))
}

func TestRequestIDUniquePerRequest(t *testing.T) {
	e := echo.New()
	handler := RequestID()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(newCalculationRequest(), rec)))
		seen[rec.Header().Get(TraceIDHeader)] = true
	}
	assert.Len(t, seen, 20)
}

func TestGetTraceIDWithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(newCalculationRequest(), httptest.NewRecorder())

	assert.Empty(t, GetTraceID(c))
}
