package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"amanah-finance/internal/config"
	"amanah-finance/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(newCalculationRequest(), rec)
	return c, rec
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	c, rec := s.newContext()
	c.Set(TraceIDContextKey, "trace-handler-1")

	echoErr := echo.NewHTTPError(http.StatusNotFound, "no route for /api/v1/schedules")
	CustomHTTPErrorHandler(echoErr, c)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "PRODUCT_001")
	s.Contains(rec.Body.String(), "trace-handler-1")
	s.Contains(rec.Body.String(), "no route for /api/v1/schedules")
}

// Validation failures coming out of the echo binding path carry one detail
// line per offending field, keyed by json name
func (s *ErrorHandlerTestSuite) TestValidatorErrors() {
	c, rec := s.newContext()
	c.Set(TraceIDContextKey, "trace-handler-2")

	type badRequest struct {
		Product    string `json:"product" validate:"required,product_type"`
		TermMonths int    `json:"term_months" validate:"omitempty,term_months"`
	}
	v := validation.NewValidator(config.Load().Calculation)
	err := v.Validate(&badRequest{Product: "mudarabah", TermMonths: 999})
	s.Require().Error(err)

	CustomHTTPErrorHandler(err, c)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
	s.Contains(rec.Body.String(), "product")
	s.Contains(rec.Body.String(), "term_months")
}

func (s *ErrorHandlerTestSuite) TestGenericError() {
	c, rec := s.newContext()
	c.Set(TraceIDContextKey, "trace-handler-3")

	CustomHTTPErrorHandler(errors.New("schedule buffer corrupted"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	s.Contains(rec.Body.String(), "trace-handler-3")
	s.NotContains(rec.Body.String(), "schedule buffer corrupted")
}

func (s *ErrorHandlerTestSuite) TestMissingTraceID() {
	c, rec := s.newContext()

	CustomHTTPErrorHandler(errors.New("boom"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "unknown")
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseLeftAlone() {
	c, rec := s.newContext()

	_ = c.JSON(http.StatusOK, map[string]string{"selling_price": "110000"})
	CustomHTTPErrorHandler(errors.New("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "110000")
}

func (s *ErrorHandlerTestSuite) TestStatusToErrorCodeMapping() {
	testCases := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, "VALIDATION_001"},
		{http.StatusNotFound, "PRODUCT_001"},
		{http.StatusMethodNotAllowed, "VALIDATION_001"},
		{http.StatusUnprocessableEntity, "VALIDATION_001"},
		{http.StatusTooManyRequests, "SYSTEM_005"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusServiceUnavailable, "SYSTEM_002"},
		{999, "SYSTEM_004"},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			c, rec := s.newContext()
			c.Set(TraceIDContextKey, "trace-mapping")

			CustomHTTPErrorHandler(echo.NewHTTPError(tc.status), c)

			s.Equal(tc.status, rec.Code)
			s.Contains(rec.Body.String(), tc.expectedCode)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestResponsesAreJSON() {
	c, rec := s.newContext()
	c.Set(TraceIDContextKey, "trace-json")

	CustomHTTPErrorHandler(errors.New("boom"), c)

	s.Contains(rec.Header().Get("Content-Type"), "application/json")
}
