// Package metrics provides Prometheus instrumentation for guard checks.
//
// # Overview
//
// Precondition checks are pure functions and record nothing on their own.
// A check.Recorder observes their results and updates the collectors held
// by a Registry:
//
//	rec := check.NewRecorder("api_handlers")
//	if err := rec.Record(check.HasText(req.Name)); err != nil {
//		return err
//	}
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//	rec := check.NewRecorderWithConfig("handlers", config, nil)
//
// # Available Metrics
//
//   - guard_check_evaluated_total: Total number of precondition checks evaluated
//   - guard_check_violations_total: Total number of failed precondition checks
//
// # Labels
//
//   - recorder: User-provided name for the recorder instance
//   - check: Name of the failed check (e.g., "HasText", "NotNull", "State")
//   - kind: "argument" or "state"
//
// # Configuration
//
//	config := metrics.Config{
//		Enabled:   true,                                // Enable/disable metrics
//		Registry:  prometheus.NewRegistry(),            // Custom registry
//		Namespace: "myapp",                             // Override default "guard"
//		Labels:    prometheus.Labels{"version": "1.0"}, // Additional labels
//	}
//
// # Runtime Control
//
// Components implementing the Instrumentable interface support runtime control:
//
//	rec.DisableMetrics()           // Stop collecting metrics
//	rec.EnableMetrics(config)      // Re-enable with new config
//	enabled := rec.MetricsEnabled() // Check current state
package metrics
