package telemetry_test

import (
	"testing"

	"github.com/jt828/storefront-telemetry/pkg/telemetry"
	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	t.Run("no labels is the bare name", func(t *testing.T) {
		assert.Equal(t, "orders_total", telemetry.Key("orders_total", nil))
		assert.Equal(t, "orders_total", telemetry.Key("orders_total", telemetry.Labels{}))
	})

	t.Run("labels are sorted by name", func(t *testing.T) {
		assert.Equal(t,
			"http_request_duration_seconds{endpoint=/checkout,status=success}",
			telemetry.Key("http_request_duration_seconds", telemetry.Labels{"status": "success", "endpoint": "/checkout"}),
		)
	})

	t.Run("insertion order is irrelevant", func(t *testing.T) {
		a := telemetry.Labels{}
		a["a"] = "1"
		a["b"] = "2"
		b := telemetry.Labels{}
		b["b"] = "2"
		b["a"] = "1"

		assert.Equal(t, telemetry.Key("m", a), telemetry.Key("m", b))
		assert.Equal(t, "m{a=1,b=2}", telemetry.Key("m", a))
	})

	t.Run("same input renders identically across calls", func(t *testing.T) {
		labels := telemetry.Labels{"z": "26", "y": "25", "x": "24"}
		first := telemetry.Key("m", labels)
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, telemetry.Key("m", labels))
		}
	})
}

func TestMatchesName(t *testing.T) {
	assert.True(t, telemetry.MatchesName("latency", "latency"))
	assert.True(t, telemetry.MatchesName("latency{ep=/a}", "latency"))
	assert.False(t, telemetry.MatchesName("latency_seconds", "latency"))
	assert.False(t, telemetry.MatchesName("lat", "latency"))
}

func TestApplyOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := telemetry.ApplyOptions()
		assert.Equal(t, telemetry.DefaultHistogramCapacity, cfg.HistogramCapacity)
		assert.Equal(t, telemetry.DefaultEventCapacity, cfg.EventCapacity)
		assert.NotNil(t, cfg.Clock)
	})

	t.Run("non-positive capacities fall back to defaults", func(t *testing.T) {
		cfg := telemetry.ApplyOptions(telemetry.WithHistogramCapacity(0), telemetry.WithEventCapacity(-1), telemetry.WithClock(nil))
		assert.Equal(t, 1000, cfg.HistogramCapacity)
		assert.Equal(t, 10000, cfg.EventCapacity)
		assert.NotNil(t, cfg.Clock)
	})
}
