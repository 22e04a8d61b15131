package repository

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sony/gobreaker/v2"
)

const (
	FailureCircuitOpen   = "circuit_open"
	FailureTimeout       = "timeout"
	FailureSchemaMissing = "schema_missing"
	FailureUnavailable   = "unavailable"
	FailureQueryError    = "query_error"
)

// StoreFailureReason names why a query against the business store failed.
func StoreFailureReason(err error) string {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return FailureCircuitOpen
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42P01", "3F000": // undefined_table, invalid_schema_name
			return FailureSchemaMissing
		case "08000", "08001", "08004", "08006", "57P01", "57P03":
			return FailureUnavailable
		}
		return FailureQueryError
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return FailureUnavailable
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return FailureUnavailable
	}

	return FailureQueryError
}
