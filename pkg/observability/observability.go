package observability

import (
	"context"
	"net/http"

	"github.com/jt828/storefront-telemetry/pkg/telemetry"
)

type Observability interface {
	Close(ctx context.Context) error
	// Handle adds a route to the metrics HTTP server. Routes must be added before Start.
	Handle(pattern string, handler http.Handler)
	Logger() Logger
	Start(ctx context.Context) error
	Telemetry() telemetry.Engine
	Tracer() Tracer
}
