package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	observabilityImpl "github.com/jt828/storefront-telemetry/pkg/observability/implementation"
	"github.com/jt828/storefront-telemetry/pkg/telemetry"
	telemetryImpl "github.com/jt828/storefront-telemetry/pkg/telemetry/implementation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPController(t *testing.T) {
	engine := telemetryImpl.NewEngine()
	engine.IncrementCounter("errors_total", 3, nil)
	engine.Observe("latency", 0.5, nil)
	business := &mockBusinessMetricsService{
		getFunc: func(ctx context.Context) telemetry.BusinessMetrics {
			return telemetry.BusinessMetrics{Source: telemetry.SourceMemory}
		},
	}
	ctrl := NewHTTPController(engine, business, observabilityImpl.NewNopLogger())

	t.Run("snapshot", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ctrl.Snapshot(rec, httptest.NewRequest(http.MethodGet, SnapshotPath, nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		var snap telemetry.Snapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
		assert.Equal(t, 3.0, snap.Counters["errors_total"])
		assert.Equal(t, 1, snap.Histograms["latency"].Count)
	})

	t.Run("business", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ctrl.Business(rec, httptest.NewRequest(http.MethodGet, BusinessPath, nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var report telemetry.BusinessMetrics
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, telemetry.SourceMemory, report.Source)
	})

	t.Run("non-GET is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ctrl.Snapshot(rec, httptest.NewRequest(http.MethodPost, SnapshotPath, nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("routes cover both reports", func(t *testing.T) {
		routes := ctrl.Routes()
		assert.Contains(t, routes, SnapshotPath)
		assert.Contains(t, routes, BusinessPath)
	})
}
