package bootstrap

import (
	"context"
	"time"

	"github.com/jt828/storefront-telemetry/internal/constant"
	"github.com/jt828/storefront-telemetry/pkg/circuitbreaker"
	"github.com/jt828/storefront-telemetry/pkg/telemetry"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthProbe publishes store reachability as gauges and as the gRPC serving
// status. The service itself stays usable without a store, so a nil pinger
// reports SERVING with database_up unset.
type HealthProbe struct {
	pinger   Pinger
	breaker  circuitbreaker.CircuitBreaker
	producer telemetry.Producer
	server   *health.Server
	timeout  time.Duration
}

func NewHealthProbe(pinger Pinger, breaker circuitbreaker.CircuitBreaker, producer telemetry.Producer, server *health.Server, timeout time.Duration) *HealthProbe {
	return &HealthProbe{pinger: pinger, breaker: breaker, producer: producer, server: server, timeout: timeout}
}

func (p *HealthProbe) Check(ctx context.Context) {
	if p.pinger == nil {
		p.server.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	up := 1.0
	if err := p.pinger.PingContext(ctx); err != nil {
		up = 0
	}
	p.producer.SetGauge(constant.DatabaseUp, up, nil)
	if p.breaker != nil {
		// State() also moves an expired open breaker to half-open
		p.producer.SetGauge(constant.CircuitBreakerState, float64(p.breaker.State()), telemetry.Labels{constant.LabelName: BreakerName})
	}

	// reports degrade to memory when the store is down, so the service keeps serving
	p.server.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
}

// Run checks immediately and then every interval until ctx is done.
func (p *HealthProbe) Run(ctx context.Context, interval time.Duration) {
	p.Check(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Check(ctx)
		}
	}
}
