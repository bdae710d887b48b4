package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	calculationsTotal   *prometheus.CounterVec
	calculationDuration prometheus.Histogram
	reportsTotal        *prometheus.CounterVec
	reportPages         prometheus.Histogram
	scheduleLength      prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		calculationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calculations_total",
				Help: "Total number of product calculations by product and status",
			},
			[]string{"product", "status"},
		),
		calculationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "calculation_duration_milliseconds",
				Help:    "Product calculation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
			},
		),
		reportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "amortization_reports_total",
				Help: "Total number of amortization reports built by product and status",
			},
			[]string{"product", "status"},
		),
		reportPages: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "amortization_report_pages",
				Help:    "Number of pages per amortization report",
				Buckets: prometheus.LinearBuckets(1, 2, 20),
			},
		),
		scheduleLength: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "amortization_schedule_periods",
				Help:    "Number of periods per generated amortization schedule",
				Buckets: prometheus.LinearBuckets(12, 24, 25),
			},
		),
	}
}

func (m *PrometheusMetrics) RecordCalculation(product, status string) {
	m.calculationsTotal.WithLabelValues(product, status).Inc()
}

func (m *PrometheusMetrics) ObserveCalculationDuration(durationMs float64) {
	m.calculationDuration.Observe(durationMs)
}

func (m *PrometheusMetrics) RecordReport(product, status string) {
	m.reportsTotal.WithLabelValues(product, status).Inc()
}

func (m *PrometheusMetrics) ObserveReportPages(pages float64) {
	m.reportPages.Observe(pages)
}

func (m *PrometheusMetrics) ObserveScheduleLength(periods float64) {
	m.scheduleLength.Observe(periods)
}
