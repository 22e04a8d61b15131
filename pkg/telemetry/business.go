package telemetry

import "github.com/shopspring/decimal"

type ReportSource string

const (
	SourceStore  ReportSource = "store"
	SourceMemory ReportSource = "memory"
)

type BusinessMetrics struct {
	Orders      OrderMetrics       `json:"orders"`
	Refunds     RefundMetrics      `json:"refunds"`
	Errors      ErrorMetrics       `json:"errors"`
	Performance PerformanceMetrics `json:"performance"`
	Source      ReportSource       `json:"source"`
}

type OrderMetrics struct {
	Total         int64           `json:"total"`
	Successful    int64           `json:"successful"`
	Failed        int64           `json:"failed"`
	Revenue       decimal.Decimal `json:"revenue"`
	RatePerMinute float64         `json:"rate_per_minute"`
}

type RefundMetrics struct {
	Total      int64   `json:"total"`
	Approved   int64   `json:"approved"`
	Rejected   int64   `json:"rejected"`
	Pending    int64   `json:"pending"`
	RatePerDay float64 `json:"rate_per_day"`
}

type ErrorMetrics struct {
	Total         float64            `json:"total"`
	RatePerMinute float64            `json:"rate_per_minute"`
	ByType        map[string]float64 `json:"by_type"`
}

type PerformanceMetrics struct {
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
	P95ResponseTimeMs float64 `json:"p95_response_time_ms"`
	P99ResponseTimeMs float64 `json:"p99_response_time_ms"`
}
