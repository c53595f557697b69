package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metric instances for guard components.
type Registry struct {
	// Check Metrics
	ChecksEvaluated *prometheus.CounterVec
	Violations      *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by guard components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return NewRegistryWithConfig(Config{Registry: reg})
}

// NewRegistryWithConfig creates a registry using the registerer, namespace
// and constant labels of config. A nil config.Registry means
// prometheus.DefaultRegisterer and an empty namespace means DefaultNamespace.
//
// Registering into a registerer that already holds identical collectors
// reuses them, so several registries may share one registerer.
func NewRegistryWithConfig(config Config) *Registry {
	reg := config.Registry
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	namespace := config.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &Registry{
		ChecksEvaluated: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "check",
				Name:        "evaluated_total",
				Help:        "Total number of precondition checks evaluated",
				ConstLabels: config.Labels,
			},
			[]string{"recorder"},
		)),

		Violations: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "check",
				Name:        "violations_total",
				Help:        "Total number of failed precondition checks",
				ConstLabels: config.Labels,
			},
			[]string{"recorder", "check", "kind"},
		)),
	}
}

// register adds c to reg, returning the already registered collector when
// an identical one exists. Any other registration error panics, as with
// promauto.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}
