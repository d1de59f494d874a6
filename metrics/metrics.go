// Package metrics holds the Prometheus collectors describing topology
// generation runs. Collectors are registered on an explicit registry; nothing
// touches the global default registerer.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/peertopo/builder"
	"github.com/katalvlaran/peertopo/serial"
)

type Metrics struct {
	Generations      *prometheus.CounterVec
	GenerationErrors *prometheus.CounterVec
	GenerationTime   *prometheus.HistogramVec
	GeneratedEdges   *prometheus.HistogramVec
	CandidateDraws   *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		Generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "peertopo_generations_total",
			Help: "Total number of topology generations attempted per strategy.",
		}, []string{"strategy"}),
		GenerationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "peertopo_generation_errors_total",
			Help: "Failed topology generations per strategy and error kind.",
		}, []string{"strategy", "kind"}),
		GenerationTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:                           "peertopo_generation_seconds",
			Help:                           "Histogram of generation wall time per strategy.",
			Buckets:                        prometheus.ExponentialBuckets(0.0005, 4, 10),
			NativeHistogramBucketFactor:    2,
			NativeHistogramMaxBucketNumber: 25,
		}, []string{"strategy"}),
		GeneratedEdges: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "peertopo_generated_edges",
			Help:    "Number of undirected edges in successfully generated topologies.",
			Buckets: prometheus.ExponentialBuckets(8, 4, 10),
		}, []string{"strategy"}),
		CandidateDraws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "peertopo_candidate_draws_total",
			Help: "Random draws consumed by generators (candidates or pair trials).",
		}, []string{"method"}),
	}
}

func (m *Metrics) Register(registry prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.Generations,
		m.GenerationErrors,
		m.GenerationTime,
		m.GeneratedEdges,
		m.CandidateDraws,
	} {
		if err := registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveDraws implements builder.Observer.
func (m *Metrics) ObserveDraws(method string, draws int64) {
	m.CandidateDraws.WithLabelValues(method).Add(float64(draws))
}

// ObserveGeneration records one finished generation. edges is ignored when
// err is non-nil.
func (m *Metrics) ObserveGeneration(strategy string, took time.Duration, edges int, err error) {
	m.Generations.WithLabelValues(strategy).Inc()
	m.GenerationTime.WithLabelValues(strategy).Observe(took.Seconds())
	if err != nil {
		m.GenerationErrors.WithLabelValues(strategy, ErrorKind(err)).Inc()
		return
	}
	m.GeneratedEdges.WithLabelValues(strategy).Observe(float64(edges))
}

// ErrorKind maps a generation/serialization error to a stable label value.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, builder.ErrInvalidParameters):
		return "invalid_parameters"
	case errors.Is(err, builder.ErrGenerationStarvation):
		return "starvation"
	case errors.Is(err, builder.ErrDegreeBound), errors.Is(err, serial.ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "cancelled"
	default:
		return "internal"
	}
}
