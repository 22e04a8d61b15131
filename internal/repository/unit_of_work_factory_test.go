package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jt828/storefront-telemetry/internal/repository"
	"github.com/jt828/storefront-telemetry/pkg/circuitbreaker"
	cbImpl "github.com/jt828/storefront-telemetry/pkg/circuitbreaker/implementation"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOnlyUnitOfWorkFactory_New(t *testing.T) {
	ctx := context.Background()

	t.Run("begins a transaction", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		factory := repository.NewReadOnlyUnitOfWorkFactory(gormDB, &passthroughCB{}, &passthroughRetry{})

		mock.ExpectBegin()
		mock.ExpectRollback()

		uow, err := factory.New(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.Abort(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failures trip the breaker", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		cb := cbImpl.NewCircuitBreaker(gobreaker.Settings{
			Name: "postgresql",
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		})
		factory := repository.NewReadOnlyUnitOfWorkFactory(gormDB, cb, &passthroughRetry{})

		for i := 0; i < 5; i++ {
			mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
		}
		for i := 0; i < 5; i++ {
			uow, err := factory.New(ctx)
			assert.Nil(t, uow)
			assert.ErrorContains(t, err, "connection refused")
		}
		assert.Equal(t, circuitbreaker.Open, cb.State())

		uow, err := factory.New(ctx)
		assert.Nil(t, uow)
		assert.ErrorIs(t, err, gobreaker.ErrOpenState)
		assert.Equal(t, repository.FailureCircuitOpen, repository.StoreFailureReason(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("open breaker skips begin", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		openErr := errors.New("circuit breaker is open")
		factory := repository.NewReadOnlyUnitOfWorkFactory(gormDB, &openCB{err: openErr}, &passthroughRetry{})

		_, err := factory.New(ctx)
		assert.ErrorIs(t, err, openErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
