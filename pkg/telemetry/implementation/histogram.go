package implementation

import (
	"maps"
	"slices"

	"github.com/jt828/storefront-telemetry/pkg/telemetry"
)

func (e *memoryEngine) Observe(name string, value float64, labels telemetry.Labels) {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := telemetry.Key(name, labels)
	h, ok := e.histograms[key]
	if !ok {
		h = &histogramSeries{name: name, labels: maps.Clone(labels), samples: newRing[sample](e.histogramCapacity)}
		e.histograms[key] = h
	}
	if h.samples.push(sample{value: value, at: e.now()}) {
		e.histogramEvictions++
	}
}

func (e *memoryEngine) HistogramStats(name string, labels telemetry.Labels) telemetry.HistogramStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.histogramStatsLocked(name, labels)
}

// histogramStatsLocked merges every series of name when labels is nil.
func (e *memoryEngine) histogramStatsLocked(name string, labels telemetry.Labels) telemetry.HistogramStats {
	var values []float64
	collect := func(s sample) { values = append(values, s.value) }

	if labels != nil {
		if h, ok := e.histograms[telemetry.Key(name, labels)]; ok {
			values = make([]float64, 0, h.samples.len())
			h.samples.each(collect)
		}
	} else {
		for key, h := range e.histograms {
			if telemetry.MatchesName(key, name) {
				h.samples.each(collect)
			}
		}
	}

	return computeStats(values)
}

// histogramNames returns the distinct metric names with at least one series.
func (e *memoryEngine) histogramNames() []string {
	names := make(map[string]struct{}, len(e.histograms))
	for _, h := range e.histograms {
		names[h.name] = struct{}{}
	}
	return slices.Sorted(maps.Keys(names))
}

// computeStats sorts values in place.
func computeStats(values []float64) telemetry.HistogramStats {
	n := len(values)
	if n == 0 {
		return telemetry.HistogramStats{}
	}
	slices.Sort(values)

	var sum float64
	for _, v := range values {
		sum += v
	}

	return telemetry.HistogramStats{
		Count: n,
		Sum:   sum,
		Min:   values[0],
		Max:   values[n-1],
		Avg:   sum / float64(n),
		P50:   percentile(values, 0.50),
		P95:   percentile(values, 0.95),
		P99:   percentile(values, 0.99),
	}
}

// percentile is nearest-rank over sorted values: index floor(p*n), clamped to
// the last element.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	idx := int(p * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return sorted[idx]
}
