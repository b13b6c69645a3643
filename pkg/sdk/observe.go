package roommatch

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/roommatch/internal/domain"
)

// sdkMetrics holds prometheus metrics registered for the SDK.
type sdkMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

func newSDKMetrics(reg prometheus.Registerer) (*sdkMetrics, error) {
	m := &sdkMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "roommatch",
			Subsystem: "sdk",
			Name:      "operations_total",
			Help:      "Total SDK operations by type and status.",
		}, []string{"operation", "status"}), // status: ok / rejected / error
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "roommatch",
			Subsystem: "sdk",
			Name:      "operation_duration_seconds",
			Help:      "SDK operation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	if err := registerOrReuse(reg, &m.operations); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse registers a collector or reuses an existing one.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("roommatch: metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("roommatch: register metric: %w", err)
	}
	return nil
}

// callerErrors are outcomes caused by the caller's input, not by a failing dependency.
var callerErrors = []error{
	domain.ErrNotFound,
	domain.ErrAlreadyExists,
	domain.ErrInvalidProfile,
	domain.ErrInvalidQuery,
	domain.ErrInvalidSnapshot,
	domain.ErrUnknownVocabulary,
	domain.ErrFeedNotOpened,
	domain.ErrStaleFeed,
	domain.ErrInvalidSavedSearch,
	domain.ErrSavedSearchLimit,
}

func status(err error) string {
	if err == nil {
		return "ok"
	}
	for _, target := range callerErrors {
		if errors.Is(err, target) {
			return "rejected"
		}
	}
	return "error"
}

// observer provides logging and metrics for SDK operations.
type observer struct {
	logger  *slog.Logger
	metrics *sdkMetrics
}

func newObserver(logger *slog.Logger, reg prometheus.Registerer) (*observer, error) {
	var m *sdkMetrics
	if reg != nil {
		var err error
		m, err = newSDKMetrics(reg)
		if err != nil {
			return nil, err
		}
	}
	return &observer{logger: logger, metrics: m}, nil
}

func (o *observer) observe(op string, start time.Time, err error) {
	if o == nil {
		return
	}
	dur := time.Since(start)
	st := status(err)

	if o.metrics != nil {
		o.metrics.operations.WithLabelValues(op, st).Inc()
		o.metrics.duration.WithLabelValues(op).Observe(dur.Seconds())
	}

	if o.logger == nil {
		return
	}
	switch st {
	case "ok":
		o.logger.Debug("operation completed", "op", op, "duration", dur)
	case "rejected":
		o.logger.Debug("operation rejected", "op", op, "duration", dur, "error", err)
	default:
		o.logger.Warn("operation failed", "op", op, "duration", dur, "error", err)
	}
}
