// Package metrics instrumentación Prometheus del API.
//
// Cada instancia tiene su propio registry (tests y procesos no comparten colectores).
// Se expone en GET /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "golden_store"

// Metrics colectores HTTP y de exportación del catálogo.
type Metrics struct {
	Registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	RequestTotal    *prometheus.CounterVec
	RequestInFlight prometheus.Gauge
	CatalogExports  *prometheus.CounterVec
}

// New registra los colectores de runtime y los del API.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de los requests HTTP en segundos.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		RequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de requests HTTP.",
		}, []string{"method", "route", "status"}),
		RequestInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Requests HTTP en curso.",
		}),
		CatalogExports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "exports_total",
			Help:      "Exportaciones del catálogo por formato y resultado.",
		}, []string{"format", "result"}), // format: pdf | feed; result: ok | error | not_modified
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.RequestTotal,
		m.RequestInFlight,
		m.CatalogExports,
	)
	return m
}

// Observe registra un request terminado.
func (m *Metrics) Observe(method, route, status string, start time.Time) {
	m.RequestDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())
	m.RequestTotal.WithLabelValues(method, route, status).Inc()
}

// Export cuenta una exportación del catálogo.
func (m *Metrics) Export(format, result string) {
	m.CatalogExports.WithLabelValues(format, result).Inc()
}

// Handler página de métricas en formato texto/OpenMetrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
