package implementation

import (
	"context"
	"net/http"

	"github.com/jt828/storefront-telemetry/pkg/observability"
	"github.com/jt828/storefront-telemetry/pkg/telemetry"
	telemetryImpl "github.com/jt828/storefront-telemetry/pkg/telemetry/implementation"
	"github.com/prometheus/client_golang/prometheus"
)

type Config struct {
	ServiceName       string
	MetricsAddr       string
	OTLPEndpoint      string
	HistogramCapacity int
	EventCapacity     int
}

func NewObservability(cfg Config) (observability.Observability, error) {
	log, err := NewZapLogger()
	if err != nil {
		return nil, err
	}

	engine := telemetryImpl.NewEngine(
		telemetry.WithHistogramCapacity(cfg.HistogramCapacity),
		telemetry.WithEventCapacity(cfg.EventCapacity),
	)

	registry := prometheus.NewRegistry()
	if err := registry.Register(NewEngineCollector(engine, "")); err != nil {
		return nil, err
	}

	tracer, shutdown, err := NewOtelTracer(context.Background(), cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		return nil, err
	}

	return &observabilityImplementation{
		log:         log,
		engine:      engine,
		registry:    registry,
		tracer:      tracer,
		traceClose:  shutdown,
		metricsAddr: cfg.MetricsAddr,
		routes:      make(map[string]http.Handler),
	}, nil
}
