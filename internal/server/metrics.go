package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the HTTP API.
type Metrics struct {
	registry *prometheus.Registry

	CalculationsTotal  *prometheus.CounterVec
	CalculationLatency *prometheus.HistogramVec
	InvalidInputs      *prometheus.CounterVec
	PaybackUnreached   prometheus.Counter
}

// NewMetrics creates the collectors on a dedicated registry so several servers can
// coexist in one process.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "wellcalc"
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		CalculationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "calculations_total",
			Help:      "Total number of calculator requests by calculator and status code",
		}, []string{"calculator", "code"}),
		CalculationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "calculation_duration_seconds",
			Help:      "Calculator request latency in seconds",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}, []string{"calculator"}),
		InvalidInputs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "invalid_inputs_total",
			Help:      "Total number of rejected calculator inputs by field",
		}, []string{"field"}),
		PaybackUnreached: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "payback_unreached_total",
			Help:      "Total number of return projections that never pay back",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Observe records one calculator request.
func (m *Metrics) Observe(calculator string, code int, elapsed time.Duration) {
	m.CalculationsTotal.WithLabelValues(calculator, statusLabel(code)).Inc()
	m.CalculationLatency.WithLabelValues(calculator).Observe(elapsed.Seconds())
}

func statusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
