// Package telemetry defines the in-process metrics engine: counters, gauges,
// bounded histograms and event windows keyed by metric name plus labels.
//
// Every distinct label set creates a new series that lives for the lifetime of
// the engine. Labels carrying unbounded values (user ids, raw paths) grow the
// engine without limit; callers own that risk.
package telemetry

import "time"

// Labels narrow a metric name into independent series. A nil Labels and an
// empty Labels both address the bare-name series, except in HistogramStats
// where nil selects the name-wide aggregate.
type Labels map[string]string

type Producer interface {
	IncrementCounter(name string, amount float64, labels Labels)
	SetGauge(name string, value float64, labels Labels)
	Observe(name string, value float64, labels Labels)
	RecordEvent(name string, labels Labels)
}

type Consumer interface {
	// Counter returns zero for a series that was never incremented.
	Counter(name string, labels Labels) float64
	// Gauge returns zero for a series that was never set, so an unset gauge
	// and a gauge explicitly set to zero read the same.
	Gauge(name string, labels Labels) float64
	HistogramStats(name string, labels Labels) HistogramStats
	// Rate returns events per second recorded within the trailing window.
	// Bursts larger than the event capacity are undercounted.
	Rate(name string, window time.Duration, labels Labels) float64
	Snapshot() Snapshot
	Points() []Point
	Evictions() Evictions
}

type Engine interface {
	Producer
	Consumer
}
