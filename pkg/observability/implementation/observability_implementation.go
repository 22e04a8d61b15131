package implementation

import (
	"context"
	"net/http"

	"github.com/jt828/storefront-telemetry/pkg/observability"
	"github.com/jt828/storefront-telemetry/pkg/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

type observabilityImplementation struct {
	log      observability.Logger
	engine   telemetry.Engine
	registry *prometheus.Registry
	tracer   observability.Tracer

	metricsAddr   string
	routes        map[string]http.Handler
	metricsServer *http.Server
	traceClose    func(context.Context) error
}

func (o *observabilityImplementation) Close(ctx context.Context) error {
	var err error
	if o.metricsServer != nil {
		err = o.metricsServer.Shutdown(ctx)
	}
	if o.traceClose != nil {
		if e := o.traceClose(ctx); err == nil {
			err = e
		}
	}
	return err
}
func (o *observabilityImplementation) Handle(pattern string, handler http.Handler) {
	o.routes[pattern] = handler
}
func (o *observabilityImplementation) Logger() observability.Logger { return o.log }
func (o *observabilityImplementation) Start(ctx context.Context) error {
	if o.metricsAddr == "" {
		return nil
	}
	o.metricsServer = StartMetricsServer(o.metricsAddr, o.registry, o.routes)
	return nil
}
func (o *observabilityImplementation) Telemetry() telemetry.Engine  { return o.engine }
func (o *observabilityImplementation) Tracer() observability.Tracer { return o.tracer }

func PromRegistry(o observability.Observability) *prometheus.Registry {
	if impl, ok := o.(*observabilityImplementation); ok {
		return impl.registry
	}
	return nil
}
