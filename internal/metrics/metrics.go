package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Call outcomes recorded for every processor operation.
const (
	OutcomeSuccess   = "success"
	OutcomeFault     = "fault"
	OutcomeTransport = "transport_error"
)

type ChannelMetrics struct {
	Calls     *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

func NewChannelMetrics(reg prometheus.Registerer) *ChannelMetrics {
	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "egopay",
		Subsystem: "soap",
		Name:      "calls_total",
		Help:      "Total number of processor operations by outcome.",
	}, []string{"operation", "outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "egopay",
		Subsystem: "soap",
		Name:      "call_duration_ms",
		Help:      "Processor operation latency in milliseconds.",
		Buckets:   []float64{25, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
	}, []string{"operation"})

	reg.MustRegister(calls, latency)
	return &ChannelMetrics{Calls: calls, LatencyMS: latency}
}

func (m *ChannelMetrics) Observe(operation, outcome string, latencyMS float64) {
	m.Calls.WithLabelValues(operation, outcome).Inc()
	m.LatencyMS.WithLabelValues(operation).Observe(latencyMS)
}

// Handler serves the given gatherer in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
