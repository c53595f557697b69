package check

import (
	"log/slog"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	gferrors "github.com/vnykmshr/guard/pkg/common/errors"
	"github.com/vnykmshr/guard/pkg/metrics"
)

// Recorder observes the results of checks made at one call site. It
// counts every check and every violation in Prometheus and logs
// violations at warn level.
type Recorder struct {
	name     string
	logger   *slog.Logger
	registry atomic.Pointer[metrics.Registry] // nil when metrics are disabled
}

var _ metrics.Instrumentable = (*Recorder)(nil)

// NewRecorder creates a recorder with metrics enabled on a private
// Prometheus registry.
func NewRecorder(name string) *Recorder {
	// Use a separate registry for each recorder to avoid conflicts
	return NewRecorderWithConfig(name, metrics.Config{
		Enabled:  true,
		Registry: prometheus.NewRegistry(),
	}, nil)
}

// NewRecorderWithConfig creates a recorder with the given metrics config.
// A nil logger means slog.Default().
func NewRecorderWithConfig(name string, config metrics.Config, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Recorder{
		name:   name,
		logger: logger.With("recorder", name),
	}
	r.registry.Store(config.Resolve())
	return r
}

// Name returns the recorder name used as the "recorder" label.
func (r *Recorder) Name() string {
	return r.name
}

// Record notes the outcome of a check and returns err unchanged:
//
//	if err := rec.Record(check.NotNull(cfg)); err != nil {
//		return err
//	}
//
// Errors that are not violations are counted with check and kind
// "unknown".
func (r *Recorder) Record(err error) error {
	registry := r.registry.Load()
	if registry != nil {
		registry.ChecksEvaluated.WithLabelValues(r.name).Inc()
	}
	if err == nil {
		return nil
	}

	checkName, kind := "unknown", "unknown"
	if v, ok := gferrors.AsViolation(err); ok {
		checkName, kind = v.Check, v.Kind.String()
	}

	if registry != nil {
		registry.Violations.WithLabelValues(r.name, checkName, kind).Inc()
	}
	r.logger.Warn("precondition violated",
		"check", checkName,
		"kind", kind,
		"error", err.Error(),
	)
	return err
}

// RecordAll records each of errs and returns the first non-nil one.
func (r *Recorder) RecordAll(errs ...error) error {
	var first error
	for _, err := range errs {
		if err = r.Record(err); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// EnableMetrics enables metrics collection with config. A config with
// Enabled false disables metrics.
func (r *Recorder) EnableMetrics(config metrics.Config) {
	r.registry.Store(config.Resolve())
}

// DisableMetrics disables metrics collection.
func (r *Recorder) DisableMetrics() {
	r.registry.Store(nil)
}

// MetricsEnabled returns true if metrics are currently enabled.
func (r *Recorder) MetricsEnabled() bool {
	return r.registry.Load() != nil
}
