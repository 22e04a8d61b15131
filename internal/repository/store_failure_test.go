package repository_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jt828/storefront-telemetry/internal/repository"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
)

func TestStoreFailureReason(t *testing.T) {
	t.Run("open circuit", func(t *testing.T) {
		assert.Equal(t, repository.FailureCircuitOpen, repository.StoreFailureReason(gobreaker.ErrOpenState))
		assert.Equal(t, repository.FailureCircuitOpen, repository.StoreFailureReason(gobreaker.ErrTooManyRequests))
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		err := fmt.Errorf("query: %w", context.DeadlineExceeded)
		assert.Equal(t, repository.FailureTimeout, repository.StoreFailureReason(err))
	})

	t.Run("undefined table", func(t *testing.T) {
		err := fmt.Errorf("scan: %w", &pgconn.PgError{Code: "42P01"})
		assert.Equal(t, repository.FailureSchemaMissing, repository.StoreFailureReason(err))
	})

	t.Run("connection failure code", func(t *testing.T) {
		assert.Equal(t, repository.FailureUnavailable, repository.StoreFailureReason(&pgconn.PgError{Code: "08006"}))
	})

	t.Run("other postgres error", func(t *testing.T) {
		assert.Equal(t, repository.FailureQueryError, repository.StoreFailureReason(&pgconn.PgError{Code: "22012"}))
	})

	t.Run("network error", func(t *testing.T) {
		err := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
		assert.Equal(t, repository.FailureUnavailable, repository.StoreFailureReason(err))
	})

	t.Run("anything else", func(t *testing.T) {
		assert.Equal(t, repository.FailureQueryError, repository.StoreFailureReason(errors.New("boom")))
	})
}
