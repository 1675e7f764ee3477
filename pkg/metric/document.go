package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Document = (*documentMetrics)(nil)

type documentMetrics struct {
	generated         *prometheus.CounterVec
	durationHistogram prometheus.Histogram
	assetFailures     *prometheus.CounterVec
}

func newDocumentMetrics(registry *promRegistry) *documentMetrics {
	generated := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "documents_generated_total",
			Help: "Total number of purchase order documents generated",
		},
		[]string{"status"},
	)

	duration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "document_generation_duration_seconds",
			Help:    "Purchase order document generation duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	assetFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_asset_failures_total",
			Help: "Total number of failures loading document assets (e.g. logo image)",
		},
		[]string{"asset"},
	)

	registry.registry.MustRegister(generated, duration, assetFailures)

	return &documentMetrics{
		generated:         generated,
		durationHistogram: duration,
		assetFailures:     assetFailures,
	}
}

func (m *documentMetrics) Generated(status string) {
	m.generated.WithLabelValues(status).Add(1)
}

func (m *documentMetrics) ObserveDuration(duration time.Duration) {
	m.durationHistogram.Observe(duration.Seconds())
}

func (m *documentMetrics) AssetFailure(asset string) {
	m.assetFailures.WithLabelValues(asset).Add(1)
}
