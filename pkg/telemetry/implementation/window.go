package implementation

import (
	"maps"
	"time"

	"github.com/jt828/storefront-telemetry/pkg/telemetry"
)

func (e *memoryEngine) RecordEvent(name string, labels telemetry.Labels) {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := telemetry.Key(name, labels)
	s, ok := e.events[key]
	if !ok {
		s = &eventSeries{name: name, labels: maps.Clone(labels), events: newRing[time.Time](e.eventCapacity)}
		e.events[key] = s
	}
	if s.events.push(e.now()) {
		e.eventEvictions++
	}
}

func (e *memoryEngine) Rate(name string, window time.Duration, labels telemetry.Labels) float64 {
	if window <= 0 {
		return 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.events[telemetry.Key(name, labels)]
	if !ok {
		return 0
	}

	cutoff := e.now().Add(-window)
	recent := 0
	s.events.each(func(at time.Time) {
		if !at.Before(cutoff) {
			recent++
		}
	})
	return float64(recent) / window.Seconds()
}
