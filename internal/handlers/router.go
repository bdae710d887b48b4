package handlers

import (
	"amanah-finance/internal/config"
	"amanah-finance/internal/locale"
	appmiddleware "amanah-finance/internal/middleware"
	"amanah-finance/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes assembles the API onto e: the middleware chain, the
// validator, and the calculation and report endpoints, all wired from cfg.
// The configuration supplies the rate limits, the CORS origins, the report
// page size, and the default display language; metrics may be nil when no
// recorder is registered.
func RegisterRoutes(e *echo.Echo, cfg *config.Config, metrics services.MetricsRecorderInterface) {
	e.Validator = NewValidator()
	e.HTTPErrorHandler = appmiddleware.CustomHTTPErrorHandler

	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.SecurityHeaders())
	e.Use(appmiddleware.PanicRecovery())
	e.Use(appmiddleware.NewRateLimiter(cfg.Server.RateLimitPerSec, cfg.Server.RateLimitBurst).Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
	}))

	hijri := locale.NewHijriFormatter(cfg.Report.DefaultLanguage)
	scheduleService := services.NewScheduleService(hijri)
	reportService := services.NewReportService(scheduleService, metrics, cfg.Report.PageSize)

	calculationHandler := NewCalculationHandler(metrics)
	reportHandler := NewReportHandler(reportService, metrics)
	healthHandler := NewHealthCheckHandler()

	api := e.Group("/api/v1")
	api.POST("/calculations", calculationHandler.Calculate)
	api.POST("/reports", reportHandler.BuildReport)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
