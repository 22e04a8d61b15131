package circuitbreaker

type State int

// The numeric values are exported as the circuit_breaker_state gauge.
const (
	Closed State = iota
	HalfOpen
	Open
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case HalfOpen:
		return "half-open"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}

type CircuitBreaker interface {
	Execute(fn func() (any, error)) (any, error)
	State() State
}

// StateListener is called on every transition, while the breaker holds its
// own lock, so it must not call back into the breaker.
type StateListener func(name string, from, to State)

type Config struct {
	StateListeners []StateListener
}

type Option func(*Config)

func WithStateListener(fn StateListener) Option {
	return func(c *Config) {
		c.StateListeners = append(c.StateListeners, fn)
	}
}

func ApplyOptions(opts ...Option) *Config {
	c := &Config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
