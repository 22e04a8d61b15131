package telemetry

import "time"

const (
	DefaultHistogramCapacity = 1000
	DefaultEventCapacity     = 10000
)

type Config struct {
	HistogramCapacity int
	EventCapacity     int
	Clock             func() time.Time
}

type Option func(*Config)

func WithHistogramCapacity(n int) Option {
	return func(c *Config) {
		c.HistogramCapacity = n
	}
}

func WithEventCapacity(n int) Option {
	return func(c *Config) {
		c.EventCapacity = n
	}
}

func WithClock(fn func() time.Time) Option {
	return func(c *Config) {
		c.Clock = fn
	}
}

func ApplyOptions(opts ...Option) *Config {
	c := &Config{
		HistogramCapacity: DefaultHistogramCapacity,
		EventCapacity:     DefaultEventCapacity,
		Clock:             time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.HistogramCapacity <= 0 {
		c.HistogramCapacity = DefaultHistogramCapacity
	}
	if c.EventCapacity <= 0 {
		c.EventCapacity = DefaultEventCapacity
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	return c
}
