package implementation

import (
	"maps"
	"slices"
	"strings"

	"github.com/jt828/storefront-telemetry/pkg/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

// engineCollector exports the telemetry engine on every scrape. It is an
// unchecked collector: its families depend on what producers have recorded.
type engineCollector struct {
	consumer  telemetry.Consumer
	namespace string

	histogramEvicted *prometheus.Desc
	eventsEvicted    *prometheus.Desc
	series           *prometheus.Desc
	dropped          *prometheus.Desc
}

func NewEngineCollector(consumer telemetry.Consumer, namespace string) prometheus.Collector {
	return &engineCollector{
		consumer:  consumer,
		namespace: namespace,
		histogramEvicted: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "telemetry", "histogram_samples_evicted_total"),
			"Histogram samples dropped because their series buffer was full",
			nil, nil,
		),
		eventsEvicted: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "telemetry", "events_evicted_total"),
			"Event timestamps dropped because their series buffer was full",
			nil, nil,
		),
		series: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "telemetry", "series"),
			"Number of counter and gauge series held by the engine",
			[]string{"kind"}, nil,
		),
		dropped: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "telemetry", "export_dropped_series"),
			"Series left out of this scrape because their name clashed with an exported family or a value could not be encoded",
			nil, nil,
		),
	}
}

func (c *engineCollector) Describe(chan<- *prometheus.Desc) {}

// Collect reads points, snapshot and evictions as three separate engine
// calls. Each is consistent on its own; writes landing between them may show
// up in one and not the others.
func (c *engineCollector) Collect(ch chan<- prometheus.Metric) {
	points := c.consumer.Points()
	snap := c.consumer.Snapshot()
	evictions := c.consumer.Evictions()

	names := newNameSet(
		prometheus.BuildFQName(c.namespace, "telemetry", "histogram_samples_evicted_total"),
		prometheus.BuildFQName(c.namespace, "telemetry", "events_evicted_total"),
		prometheus.BuildFQName(c.namespace, "telemetry", "series"),
		prometheus.BuildFQName(c.namespace, "telemetry", "export_dropped_series"),
	)
	dropped := 0

	// -------------------- Counters & Gauges --------------------

	seriesByKind := map[telemetry.Kind]int{}
	for _, family := range groupFamilies(points) {
		seriesByKind[family.kind] += len(family.points)
		fqName := prometheus.BuildFQName(c.namespace, "", sanitizeName(family.name))
		if !names.reserve(fqName) {
			dropped += len(family.points)
			continue
		}
		dropped += c.collectFamily(ch, fqName, family)
	}

	// -------------------- Histograms --------------------

	for _, name := range slices.Sorted(maps.Keys(snap.Histograms)) {
		stats := snap.Histograms[name]
		fqName := prometheus.BuildFQName(c.namespace, "", sanitizeName(name))
		if !names.reserve(fqName, fqName+"_sum", fqName+"_count") {
			dropped++
			continue
		}
		desc := prometheus.NewDesc(fqName, "Retained-window summary recorded by the telemetry engine", nil, nil)
		m, err := prometheus.NewConstSummary(desc, uint64(stats.Count), stats.Sum, map[float64]float64{
			0.5:  stats.P50,
			0.95: stats.P95,
			0.99: stats.P99,
		})
		if err != nil {
			dropped++
			continue
		}
		ch <- m
	}

	// -------------------- Engine --------------------

	ch <- prometheus.MustNewConstMetric(c.histogramEvicted, prometheus.CounterValue, float64(evictions.HistogramSamples))
	ch <- prometheus.MustNewConstMetric(c.eventsEvicted, prometheus.CounterValue, float64(evictions.Events))
	for _, kind := range []telemetry.Kind{telemetry.KindCounter, telemetry.KindGauge} {
		ch <- prometheus.MustNewConstMetric(c.series, prometheus.GaugeValue, float64(seriesByKind[kind]), kind.String())
	}
	ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.GaugeValue, float64(dropped))
}

// collectFamily sends every series of f and returns how many it had to skip.
func (c *engineCollector) collectFamily(ch chan<- prometheus.Metric, fqName string, f family) int {
	valueType := prometheus.CounterValue
	help := "Counter recorded by the telemetry engine"
	if f.kind == telemetry.KindGauge {
		valueType = prometheus.GaugeValue
		help = "Gauge recorded by the telemetry engine"
	}

	labelKeys := f.labelKeys()
	labelNames := make([]string, len(labelKeys))
	for i, k := range labelKeys {
		labelNames[i] = sanitizeName(k)
	}

	desc := prometheus.NewDesc(fqName, help, labelNames, nil)
	seen := map[string]struct{}{}
	skipped := 0
	for _, p := range f.points {
		values := make([]string, len(labelKeys))
		for i, k := range labelKeys {
			values[i] = strings.ToValidUTF8(p.Labels[k], "\uFFFD")
		}
		// distinct engine series can coincide once values are repaired or
		// missing labels are exported as empty
		sig := strings.Join(values, "\xff")
		if _, ok := seen[sig]; ok {
			skipped++
			continue
		}
		m, err := prometheus.NewConstMetric(desc, valueType, p.Value, values...)
		if err != nil {
			skipped++
			continue
		}
		seen[sig] = struct{}{}
		ch <- m
	}
	return skipped
}

// -------------------- Helpers --------------------

type family struct {
	kind   telemetry.Kind
	name   string
	points []telemetry.Point
}

// labelKeys is the sorted union of label names across the family. Series
// lacking a label export it as empty, which Prometheus treats as absent.
func (f family) labelKeys() []string {
	seen := map[string]struct{}{}
	var keys []string
	for _, p := range f.points {
		for k := range p.Labels {
			if _, ok := seen[sanitizeName(k)]; ok {
				continue
			}
			seen[sanitizeName(k)] = struct{}{}
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

func groupFamilies(points []telemetry.Point) []family {
	type familyKey struct {
		kind telemetry.Kind
		name string
	}
	index := map[familyKey]int{}
	var families []family
	for _, p := range points {
		k := familyKey{kind: p.Kind, name: p.Name}
		i, ok := index[k]
		if !ok {
			i = len(families)
			index[k] = i
			families = append(families, family{kind: p.Kind, name: p.Name})
		}
		families[i].points = append(families[i].points, p)
	}
	return families
}

// sanitizeName maps s onto [a-zA-Z_][a-zA-Z0-9_]* without a reserved "__" prefix.
func sanitizeName(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" {
		return "_"
	}
	if strings.HasPrefix(out, "__") {
		out = "x" + out
	}
	return out
}

// nameSet tracks the metric names already used in one scrape.
type nameSet map[string]struct{}

func newNameSet(names ...string) nameSet {
	s := nameSet{}
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// reserve claims every name or none of them.
func (s nameSet) reserve(names ...string) bool {
	for _, n := range names {
		if _, ok := s[n]; ok {
			return false
		}
	}
	for _, n := range names {
		s[n] = struct{}{}
	}
	return true
}
