// Package prometheus records docqa session metrics with the Prometheus
// client library.
package prometheus

import (
	"context"
	"net/http"
	"time"

	"github.com/fwojciec/docqa"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "docqa"

// Metrics holds the collectors for question sessions. Each Metrics owns its
// own registry so that several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	sessions       *prometheus.CounterVec
	extractions    *prometheus.CounterVec
	answerDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Finished question sessions by final state and error code.",
		}, []string{"state", "code"}),
		extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Source extractions by source kind and error code (empty on success).",
		}, []string{"kind", "code"}),
		answerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "answer_duration_seconds",
			Help:      "Latency of backend calls.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
		}, []string{"code"}),
	}
	m.registry.MustRegister(m.sessions, m.extractions, m.answerDuration)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collected metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Observe records a session event. It has the signature of
// docqa.SessionEventFunc.
func (m *Metrics) Observe(e docqa.SessionEvent) {
	switch e.Type {
	case docqa.EventTransition:
		if e.To.Terminal() {
			m.sessions.WithLabelValues(string(e.To), docqa.ErrorCode(e.Err)).Inc()
		}
	case docqa.EventExtracted:
		m.extractions.WithLabelValues(e.Source.Kind.String(), docqa.ErrorCode(e.Err)).Inc()
	}
}

// Ensure InstrumentedAnswerer implements docqa.Answerer.
var _ docqa.Answerer = (*InstrumentedAnswerer)(nil)

// InstrumentedAnswerer records the latency of each backend call.
type InstrumentedAnswerer struct {
	next    docqa.Answerer
	metrics *Metrics
}

// NewInstrumentedAnswerer wraps next.
func NewInstrumentedAnswerer(next docqa.Answerer, metrics *Metrics) *InstrumentedAnswerer {
	return &InstrumentedAnswerer{next: next, metrics: metrics}
}

// Answer delegates to the wrapped answerer.
func (a *InstrumentedAnswerer) Answer(ctx context.Context, prompt string) (text string, err error) {
	defer func(begin time.Time) {
		a.metrics.answerDuration.WithLabelValues(docqa.ErrorCode(err)).Observe(time.Since(begin).Seconds())
	}(time.Now())

	return a.next.Answer(ctx, prompt)
}
