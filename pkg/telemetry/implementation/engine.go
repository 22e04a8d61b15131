package implementation

import (
	"maps"
	"sync"
	"time"

	"github.com/jt828/storefront-telemetry/pkg/telemetry"
)

type scalarSeries struct {
	name   string
	labels telemetry.Labels
	value  float64
}

type sample struct {
	value float64
	at    time.Time
}

type histogramSeries struct {
	name    string
	labels  telemetry.Labels
	samples *ring[sample]
}

type eventSeries struct {
	name   string
	labels telemetry.Labels
	events *ring[time.Time]
}

// memoryEngine keeps every store behind one mutex so that a snapshot is a
// single atomic read across counters, gauges and histograms.
type memoryEngine struct {
	mu sync.Mutex

	counters   map[string]*scalarSeries
	gauges     map[string]*scalarSeries
	histograms map[string]*histogramSeries
	events     map[string]*eventSeries

	histogramEvictions uint64
	eventEvictions     uint64

	histogramCapacity int
	eventCapacity     int
	now               func() time.Time
	startedAt         time.Time
}

func NewEngine(opts ...telemetry.Option) telemetry.Engine {
	cfg := telemetry.ApplyOptions(opts...)
	return &memoryEngine{
		counters:          make(map[string]*scalarSeries),
		gauges:            make(map[string]*scalarSeries),
		histograms:        make(map[string]*histogramSeries),
		events:            make(map[string]*eventSeries),
		histogramCapacity: cfg.HistogramCapacity,
		eventCapacity:     cfg.EventCapacity,
		now:               cfg.Clock,
		startedAt:         cfg.Clock(),
	}
}

func (e *memoryEngine) IncrementCounter(name string, amount float64, labels telemetry.Labels) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ensureScalar(e.counters, name, labels).value += amount
}

func (e *memoryEngine) SetGauge(name string, value float64, labels telemetry.Labels) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ensureScalar(e.gauges, name, labels).value = value
}

func (e *memoryEngine) Counter(name string, labels telemetry.Labels) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return readScalar(e.counters, name, labels)
}

func (e *memoryEngine) Gauge(name string, labels telemetry.Labels) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return readScalar(e.gauges, name, labels)
}

func (e *memoryEngine) Evictions() telemetry.Evictions {
	e.mu.Lock()
	defer e.mu.Unlock()
	return telemetry.Evictions{
		HistogramSamples: e.histogramEvictions,
		Events:           e.eventEvictions,
	}
}

func ensureScalar(m map[string]*scalarSeries, name string, labels telemetry.Labels) *scalarSeries {
	key := telemetry.Key(name, labels)
	s, ok := m[key]
	if !ok {
		s = &scalarSeries{name: name, labels: maps.Clone(labels)}
		m[key] = s
	}
	return s
}

func readScalar(m map[string]*scalarSeries, name string, labels telemetry.Labels) float64 {
	if s, ok := m[telemetry.Key(name, labels)]; ok {
		return s.value
	}
	return 0
}
