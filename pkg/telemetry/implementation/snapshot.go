package implementation

import (
	"maps"
	"slices"
	"strings"

	"github.com/jt828/storefront-telemetry/pkg/telemetry"
)

func (e *memoryEngine) Snapshot() telemetry.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	snap := telemetry.Snapshot{
		Timestamp:     now.UTC(),
		UptimeSeconds: now.Sub(e.startedAt).Seconds(),
		Counters:      make(map[string]float64, len(e.counters)),
		Gauges:        make(map[string]float64, len(e.gauges)),
		Histograms:    make(map[string]telemetry.HistogramStats),
	}
	for key, s := range e.counters {
		snap.Counters[key] = s.value
	}
	for key, s := range e.gauges {
		snap.Gauges[key] = s.value
	}
	for _, name := range e.histogramNames() {
		snap.Histograms[name] = e.histogramStatsLocked(name, nil)
	}
	return snap
}

// Points lists counters then gauges, each ordered by key.
func (e *memoryEngine) Points() []telemetry.Point {
	e.mu.Lock()
	defer e.mu.Unlock()

	points := make([]telemetry.Point, 0, len(e.counters)+len(e.gauges))
	points = appendPoints(points, telemetry.KindCounter, e.counters)
	points = appendPoints(points, telemetry.KindGauge, e.gauges)
	return points
}

func appendPoints(points []telemetry.Point, kind telemetry.Kind, m map[string]*scalarSeries) []telemetry.Point {
	start := len(points)
	for key, s := range m {
		points = append(points, telemetry.Point{
			Kind:   kind,
			Key:    key,
			Name:   s.name,
			Labels: maps.Clone(s.labels),
			Value:  s.value,
		})
	}
	slices.SortFunc(points[start:], func(a, b telemetry.Point) int {
		return strings.Compare(a.Key, b.Key)
	})
	return points
}
