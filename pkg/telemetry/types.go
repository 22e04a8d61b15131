package telemetry

import "time"

type HistogramStats struct {
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Avg   float64 `json:"avg"`
	P50   float64 `json:"p50"`
	P95   float64 `json:"p95"`
	P99   float64 `json:"p99"`
}

type Snapshot struct {
	Timestamp     time.Time                 `json:"timestamp"`
	UptimeSeconds float64                   `json:"uptime_seconds"`
	Counters      map[string]float64        `json:"counters"`
	Gauges        map[string]float64        `json:"gauges"`
	Histograms    map[string]HistogramStats `json:"histograms"`
}

type Kind int

const (
	KindCounter Kind = iota
	KindGauge
)

func (k Kind) String() string {
	switch k {
	case KindCounter:
		return "counter"
	case KindGauge:
		return "gauge"
	default:
		return "unknown"
	}
}

// Point is one counter or gauge series with its identity broken out.
type Point struct {
	Kind   Kind
	Key    string
	Name   string
	Labels Labels
	Value  float64
}

// Evictions counts entries dropped from full buffers since the engine started.
type Evictions struct {
	HistogramSamples uint64
	Events           uint64
}
