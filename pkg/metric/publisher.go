package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Publisher = (*publisherMetrics)(nil)

type publisherMetrics struct {
	published         *prometheus.CounterVec
	failed            *prometheus.CounterVec
	durationHistogram *prometheus.HistogramVec
}

func newPublisherMetrics(registry *promRegistry) *publisherMetrics {
	published := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "publisher_events_published_total",
			Help: "Total number of events published to the broker",
		},
		[]string{"topic"},
	)

	failed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "publisher_events_failed_total",
			Help: "Total number of events that failed to publish",
		},
		[]string{"topic", "reason"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "publisher_publish_duration_seconds",
			Help:    "Event publish duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"topic"},
	)

	registry.registry.MustRegister(published, failed, duration)

	return &publisherMetrics{
		published:         published,
		failed:            failed,
		durationHistogram: duration,
	}
}

func (m *publisherMetrics) Published(topic string) {
	m.published.WithLabelValues(topic).Add(1)
}

func (m *publisherMetrics) PublishFailed(topic string, reason string) {
	m.failed.WithLabelValues(topic, reason).Add(1)
}

func (m *publisherMetrics) ObserveDuration(topic string, duration time.Duration) {
	m.durationHistogram.WithLabelValues(topic).Observe(duration.Seconds())
}
