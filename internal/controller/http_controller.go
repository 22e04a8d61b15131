package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jt828/storefront-telemetry/internal/service"
	"github.com/jt828/storefront-telemetry/pkg/observability"
	"github.com/jt828/storefront-telemetry/pkg/telemetry"
)

const (
	SnapshotPath = "/metrics/snapshot"
	BusinessPath = "/metrics/business"
)

// HTTPController serves the JSON reports next to the Prometheus endpoint.
type HTTPController struct {
	engine          telemetry.Consumer
	businessService service.BusinessMetricsService
	log             observability.Logger
}

func NewHTTPController(engine telemetry.Consumer, businessService service.BusinessMetricsService, log observability.Logger) *HTTPController {
	return &HTTPController{engine: engine, businessService: businessService, log: log}
}

func (ctrl *HTTPController) Routes() map[string]http.Handler {
	return map[string]http.Handler{
		SnapshotPath: http.HandlerFunc(ctrl.Snapshot),
		BusinessPath: http.HandlerFunc(ctrl.Business),
	}
}

func (ctrl *HTTPController) Snapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctrl.writeJSON(w, ctrl.engine.Snapshot())
}

func (ctrl *HTTPController) Business(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctrl.writeJSON(w, ctrl.businessService.GetBusinessMetrics(r.Context()))
}

func (ctrl *HTTPController) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctrl.log.Error("failed to write response", observability.Err(err))
	}
}
