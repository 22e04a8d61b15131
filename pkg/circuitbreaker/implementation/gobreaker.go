package implementation

import (
	"github.com/jt828/storefront-telemetry/pkg/circuitbreaker"
	"github.com/sony/gobreaker/v2"
)

type gobreakerCircuitBreaker struct {
	cb *gobreaker.CircuitBreaker[any]
}

// NewCircuitBreaker chains any listeners after settings.OnStateChange.
func NewCircuitBreaker(settings gobreaker.Settings, opts ...circuitbreaker.Option) circuitbreaker.CircuitBreaker {
	cfg := circuitbreaker.ApplyOptions(opts...)
	if len(cfg.StateListeners) > 0 {
		next := settings.OnStateChange
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			if next != nil {
				next(name, from, to)
			}
			for _, listener := range cfg.StateListeners {
				listener(name, toState(from), toState(to))
			}
		}
	}

	return &gobreakerCircuitBreaker{
		cb: gobreaker.NewCircuitBreaker[any](settings),
	}
}

func (g *gobreakerCircuitBreaker) Execute(fn func() (any, error)) (any, error) {
	return g.cb.Execute(fn)
}

func (g *gobreakerCircuitBreaker) State() circuitbreaker.State {
	return toState(g.cb.State())
}

func toState(s gobreaker.State) circuitbreaker.State {
	switch s {
	case gobreaker.StateHalfOpen:
		return circuitbreaker.HalfOpen
	case gobreaker.StateOpen:
		return circuitbreaker.Open
	default:
		return circuitbreaker.Closed
	}
}
