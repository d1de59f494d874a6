package metrics_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peertopo/builder"
	"github.com/katalvlaran/peertopo/metrics"
	"github.com/katalvlaran/peertopo/serial"
)

func TestRegister_Twice(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics()
	require.NoError(t, m.Register(reg))
	require.Error(t, m.Register(reg))
}

func TestObserveGeneration(t *testing.T) {
	m := metrics.NewMetrics()

	m.ObserveGeneration("symmetric", 3*time.Millisecond, 120, nil)
	m.ObserveGeneration("symmetric", time.Millisecond, 0, fmt.Errorf("x: %w", builder.ErrGenerationStarvation))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Generations.WithLabelValues("symmetric")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationErrors.WithLabelValues("symmetric", "starvation")))
}

func TestObserverWiredIntoBuilder(t *testing.T) {
	m := metrics.NewMetrics()
	_, err := builder.SmallWorld(10, 0.5, 0.5, 2, builder.WithSeed(1), builder.WithObserver(m))
	require.NoError(t, err)
	assert.Equal(t, 90.0, testutil.ToFloat64(m.CandidateDraws.WithLabelValues(builder.MethodSmallWorld)))
}

func TestErrorKind(t *testing.T) {
	tests := map[string]error{
		"none":               nil,
		"invalid_parameters": fmt.Errorf("a: %w", builder.ErrInvalidParameters),
		"starvation":         builder.ErrGenerationStarvation,
		"capacity_exceeded":  fmt.Errorf("b: %w", serial.ErrCapacityExceeded),
		"cancelled":          fmt.Errorf("c: %w", context.DeadlineExceeded),
		"internal":           errors.New("boom"),
	}
	for want, err := range tests {
		assert.Equal(t, want, metrics.ErrorKind(err))
	}
}
