package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	ServiceName string          `yaml:"service_name"`
	GRPCAddr    string          `yaml:"grpc_addr"`
	MetricsAddr string          `yaml:"metrics_addr"`
	OTLP        OTLPConfig      `yaml:"otlp"`
	Telemetry   TelemetryConfig `yaml:"telemetry"`
	Database    DatabaseConfig  `yaml:"database"`
}

type OTLPConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type TelemetryConfig struct {
	HistogramCapacity int `yaml:"histogram_capacity"`
	EventCapacity     int `yaml:"event_capacity"`
}

type DatabaseConfig struct {
	// DSN is empty when no business store is configured.
	DSN                 string        `yaml:"dsn"`
	QueryTimeout        time.Duration `yaml:"query_timeout"`
	HealthInterval      time.Duration `yaml:"health_interval"`
	BreakerFailures     uint32        `yaml:"breaker_failures"`
	BreakerOpenDuration time.Duration `yaml:"breaker_open_duration"`
}

func NewDefault() *Config {
	return &Config{
		ServiceName: "storefront-telemetry",
		GRPCAddr:    ":50051",
		MetricsAddr: ":9090",
		OTLP: OTLPConfig{
			Endpoint: "localhost:4317",
		},
		Telemetry: TelemetryConfig{
			HistogramCapacity: 1000,
			EventCapacity:     10000,
		},
		Database: DatabaseConfig{
			QueryTimeout:        2 * time.Second,
			HealthInterval:      10 * time.Second,
			BreakerFailures:     5,
			BreakerOpenDuration: 30 * time.Second,
		},
	}
}

// Load applies the file at path (if any) and then the environment on top of
// the defaults.
func Load(path string) (*Config, error) {
	cfg := NewDefault()
	if path != "" {
		if err := cfg.LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) LoadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

func (c *Config) LoadFromEnv() error {
	if val := os.Getenv("DATABASE_DSN"); val != "" {
		c.Database.DSN = val
	}
	if val := os.Getenv("OTLP_ENDPOINT"); val != "" {
		c.OTLP.Endpoint = val
	}
	if val := os.Getenv("GRPC_ADDR"); val != "" {
		c.GRPCAddr = val
	}
	if val := os.Getenv("METRICS_ADDR"); val != "" {
		c.MetricsAddr = val
	}
	if val := os.Getenv("TELEMETRY_HISTOGRAM_CAPACITY"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("TELEMETRY_HISTOGRAM_CAPACITY: %w", err)
		}
		c.Telemetry.HistogramCapacity = n
	}
	if val := os.Getenv("TELEMETRY_EVENT_CAPACITY"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("TELEMETRY_EVENT_CAPACITY: %w", err)
		}
		c.Telemetry.EventCapacity = n
	}
	return nil
}

func (c *Config) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}
	if c.GRPCAddr == "" {
		return fmt.Errorf("grpc_addr is required")
	}
	if c.Telemetry.HistogramCapacity <= 0 {
		return fmt.Errorf("histogram_capacity must be greater than 0")
	}
	if c.Telemetry.EventCapacity <= 0 {
		return fmt.Errorf("event_capacity must be greater than 0")
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("query_timeout must be greater than 0")
	}
	if c.Database.HealthInterval <= 0 {
		return fmt.Errorf("health_interval must be greater than 0")
	}
	if c.Database.BreakerFailures == 0 {
		return fmt.Errorf("breaker_failures must be greater than 0")
	}
	if c.MetricsAddr != "" && c.MetricsAddr == c.GRPCAddr {
		return fmt.Errorf("metrics_addr and grpc_addr cannot be the same")
	}
	return nil
}
