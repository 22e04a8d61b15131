package telemetry_test

import (
	"errors"
	"testing"

	"github.com/jt828/storefront-telemetry/pkg/telemetry"
	"github.com/jt828/storefront-telemetry/pkg/telemetry/implementation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func durationLabels(endpoint, outcome string) telemetry.Labels {
	return telemetry.Labels{telemetry.LabelEndpoint: endpoint, telemetry.LabelStatus: outcome}
}

func TestTrack(t *testing.T) {
	t.Run("success observes duration with success outcome", func(t *testing.T) {
		e := implementation.NewEngine()
		called := false

		err := telemetry.Track(e, "/checkout", func() error {
			called = true
			return nil
		})

		require.NoError(t, err)
		assert.True(t, called)
		stats := e.HistogramStats(telemetry.RequestDurationSeconds, durationLabels("/checkout", telemetry.OutcomeSuccess))
		assert.Equal(t, 1, stats.Count)
		assert.GreaterOrEqual(t, stats.Min, 0.0)
		assert.Equal(t, 0.0, e.Counter(telemetry.ErrorsTotal, nil))
	})

	t.Run("failure is returned unchanged and counted", func(t *testing.T) {
		e := implementation.NewEngine()
		workErr := errors.New("payment declined")

		err := telemetry.Track(e, "/checkout", func() error { return workErr })

		assert.Same(t, workErr, err)
		assert.Equal(t, 1.0, e.Counter(telemetry.ErrorsTotal, nil))
		assert.Equal(t, 1, e.HistogramStats(telemetry.RequestDurationSeconds, durationLabels("/checkout", telemetry.OutcomeError)).Count)
		assert.Equal(t, 0, e.HistogramStats(telemetry.RequestDurationSeconds, durationLabels("/checkout", telemetry.OutcomeSuccess)).Count)
	})

	t.Run("panic is observed once and re-raised", func(t *testing.T) {
		e := implementation.NewEngine()

		assert.PanicsWithValue(t, "boom", func() {
			_ = telemetry.Track(e, "/cart", func() error { panic("boom") })
		})

		assert.Equal(t, 1.0, e.Counter(telemetry.ErrorsTotal, nil))
		assert.Equal(t, 1, e.HistogramStats(telemetry.RequestDurationSeconds, nil).Count)
	})

	t.Run("endpoints aggregate under the histogram name", func(t *testing.T) {
		e := implementation.NewEngine()
		_ = telemetry.Track(e, "/a", func() error { return nil })
		_ = telemetry.Track(e, "/b", func() error { return errors.New("x") })

		assert.Equal(t, 2, e.HistogramStats(telemetry.RequestDurationSeconds, nil).Count)
	})
}
