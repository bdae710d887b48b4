package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"amanah-finance/internal/models"
	"amanah-finance/internal/services"
	"amanah-finance/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ReportHandlerTestSuite is the test suite for ReportHandler
type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockReportService *service_mocks.MockReportServiceInterface
	mockMetrics       *service_mocks.MockMetricsRecorderInterface
	handler           *ReportHandler
}

func (s *ReportHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockReportService = service_mocks.NewMockReportServiceInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.handler = NewReportHandler(s.mockReportService, s.mockMetrics)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func newReportContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func fakeReport(product models.ProductType, pages int) *models.AmortizationReport {
	return &models.AmortizationReport{
		ReferenceID: "RPT-" + strings.ToUpper(gofakeit.HexUint(48)[2:]),
		Product:     product,
		Totals: models.ReportTotals{
			TotalPayments: decimal.NewFromFloat(gofakeit.Price(50000, 200000)),
			FinalBalance:  decimal.Zero,
		},
		Pages:       make([]models.ReportPage, pages),
		PageSize:    services.DefaultReportPageSize,
		TotalPages:  pages,
		GeneratedAt: time.Now().UTC(),
	}
}

func (s *ReportHandlerTestSuite) TestBuildReport_Murabaha() {
	body := `{"product":"murabaha","cost_price":100000,"profit_rate":10,"term_months":12,"start_date":"2026-02-01"}`
	c, rec := newReportContext(body)

	expectedStart := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	report := fakeReport(models.ProductMurabaha, 1)

	s.mockReportService.EXPECT().
		BuildReport(models.ProductMurabaha, gomock.Any(), gomock.Any(), expectedStart, 0, "").
		DoAndReturn(func(product models.ProductType, input models.CalculationInput, result *models.CalculationResult, startDate time.Time, pageSize int, lang string) (*models.AmortizationReport, error) {
			s.Require().NotNil(result)
			summary, ok := result.Summary.(*models.MurabahaSummary)
			s.Require().True(ok)
			s.True(summary.TotalSalePrice.Equal(decimal.NewFromInt(110000)))
			return report, nil
		})

	err := s.handler.BuildReport(c)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data models.AmortizationReport `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(report.ReferenceID, response.Data.ReferenceID)
	s.Equal(1, response.Data.TotalPages)
}

func (s *ReportHandlerTestSuite) TestBuildReport_PassesPageSizeAndLanguage() {
	body := `{"product":"ijara","asset_value":50000,"residual_percent":20,"lease_term_months":24,"start_date":"2026-03-01","page_size":10,"language":"ar"}`
	c, rec := newReportContext(body)

	s.mockReportService.EXPECT().
		BuildReport(models.ProductIjara, gomock.Any(), gomock.Any(), gomock.Any(), 10, "ar").
		Return(fakeReport(models.ProductIjara, 3), nil)

	err := s.handler.BuildReport(c)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ReportHandlerTestSuite) TestBuildReport_NonAmortizingProduct() {
	body := `{"product":"zakat","cash":5000,"gold_price_per_gram":60,"start_date":"2026-02-01"}`
	c, rec := newReportContext(body)

	err := s.handler.BuildReport(c)
	s.Require().NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("PRODUCT_002", response.Error.Code)
}

func (s *ReportHandlerTestSuite) TestBuildReport_BadStartDate() {
	body := `{"product":"murabaha","cost_price":100000,"profit_rate":10,"term_months":12,"start_date":"01/02/2026"}`
	c, rec := newReportContext(body)

	err := s.handler.BuildReport(c)
	s.Require().NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("REPORT_002", response.Error.Code)
}

func (s *ReportHandlerTestSuite) TestBuildReport_MissingStartDate() {
	body := `{"product":"murabaha","cost_price":100000,"profit_rate":10,"term_months":12}`
	c, _ := newReportContext(body)

	// required start_date fails validation; the error handler formats it
	err := s.handler.BuildReport(c)
	s.Require().Error(err)
}

func (s *ReportHandlerTestSuite) TestBuildReport_CalculationRejected() {
	body := `{"product":"murabaha","profit_rate":10,"term_months":12,"start_date":"2026-02-01"}`
	c, rec := newReportContext(body)

	err := s.handler.BuildReport(c)
	s.Require().NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("CALC_001", response.Error.Code)
}

func (s *ReportHandlerTestSuite) TestBuildReport_ServiceFailure() {
	body := `{"product":"murabaha","cost_price":100000,"profit_rate":10,"term_months":12,"start_date":"2026-02-01"}`
	c, rec := newReportContext(body)

	s.mockReportService.EXPECT().
		BuildReport(models.ProductMurabaha, gomock.Any(), gomock.Any(), gomock.Any(), 0, "").
		Return(nil, errors.New("pagination exploded"))

	err := s.handler.BuildReport(c)
	s.Require().NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SYSTEM_001", response.Error.Code)
}

func (s *ReportHandlerTestSuite) TestBuildReport_InvalidPageSizeFromService() {
	body := `{"product":"murabaha","cost_price":100000,"profit_rate":10,"term_months":12,"start_date":"2026-02-01"}`
	c, rec := newReportContext(body)

	s.mockReportService.EXPECT().
		BuildReport(models.ProductMurabaha, gomock.Any(), gomock.Any(), gomock.Any(), 0, "").
		Return(nil, services.ErrInvalidPageSize)

	err := s.handler.BuildReport(c)
	s.Require().NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("REPORT_001", response.Error.Code)
}
