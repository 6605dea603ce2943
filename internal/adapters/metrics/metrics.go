package metrics

import (
	"net/http"
	"strconv"
	"time"

	"listing-service/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics - счетчики загрузки и гистограмма длительности HTTP-запросов.
// Регистрируются в собственном реестре, поэтому экземпляров может быть несколько (тесты).
type Metrics struct {
	registry        *prometheus.Registry
	ingestRecords   *prometheus.CounterVec
	ingestDiagnoses *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func NewMetrics(serviceName string) *Metrics {
	if serviceName == "" {
		serviceName = "listing-service"
	}
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ingestRecords: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "listing_ingest_records_total",
				Help:        "Feed records processed by ingestion, by outcome.",
				ConstLabels: constLabels,
			},
			[]string{"outcome"}, // created | updated | failed | rejected
		),
		ingestDiagnoses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "listing_ingest_diagnostics_total",
				Help:        "Column-level normalization diagnostics, by kind.",
				ConstLabels: constLabels,
			},
			[]string{"kind"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "listing_http_request_duration_seconds",
				Help:        "HTTP request latency by route and status code.",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"route", "status_code"},
		),
	}

	m.registry.MustRegister(
		m.ingestRecords,
		m.ingestDiagnoses,
		m.requestDuration,
		prometheus.NewGoCollector(),
	)
	return m
}

// RecordOutcome увеличивает счетчик исхода обработки записи
func (m *Metrics) RecordOutcome(outcome string) {
	if m == nil {
		return
	}
	m.ingestRecords.WithLabelValues(outcome).Inc()
}

// RecordDiagnostic увеличивает счетчик замечаний нормализатора
func (m *Metrics) RecordDiagnostic(kind domain.DiagnosticKind) {
	if m == nil {
		return
	}
	m.ingestDiagnoses.WithLabelValues(string(kind)).Inc()
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware измеряет длительность запроса. Маршрут берется из шаблона chi,
// чтобы метка не зависела от значений параметров.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestDuration.
			WithLabelValues(routePattern(r), strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unknown"
}
