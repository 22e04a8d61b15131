package constant

import "github.com/jt828/storefront-telemetry/pkg/telemetry"

// Series names shared by producers and the business report.
const (
	RequestDurationSeconds = telemetry.RequestDurationSeconds
	ErrorsTotal            = telemetry.ErrorsTotal
	HTTPErrors             = "http_errors"
	OrdersTotal            = "orders_total"
	RefundsTotal           = "refunds_total"

	DBQueryDurationSeconds = telemetry.DBQueryDurationSeconds
	DBQueriesTotal         = telemetry.DBQueriesTotal
	DBQueryErrorsTotal     = telemetry.DBQueryErrorsTotal

	DatabaseUp          = "database_up"
	CircuitBreakerState = "circuit_breaker_state"
)

// Label keys and values.
const (
	LabelEndpoint  = telemetry.LabelEndpoint
	LabelStatus    = telemetry.LabelStatus
	LabelType      = "type"
	LabelOperation = telemetry.LabelOperation
	LabelName      = "name"

	OutcomeSuccess = telemetry.OutcomeSuccess
	OutcomeError   = telemetry.OutcomeError

	ErrorClassClient = "4xx"
	ErrorClassServer = "5xx"
)

// Labels used by business workflows for the in-memory order and refund counters.
const (
	OrderOutcomeSuccess = "success"
	OrderOutcomeFailed  = "failed"

	RefundOutcomeApproved = "approved"
	RefundOutcomeRejected = "rejected"
	RefundOutcomePending  = "pending"
)
