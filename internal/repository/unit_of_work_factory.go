package repository

import (
	"context"
	"database/sql"

	"github.com/jt828/storefront-telemetry/pkg/circuitbreaker"
	"github.com/jt828/storefront-telemetry/pkg/retry"
	"gorm.io/gorm"
)

type UnitOfWorkFactory interface {
	New(ctx context.Context) (UnitOfWork, error)
}

// readOnlyUnitOfWorkFactory opens read-only transactions so that every count in
// one report is taken from the same database snapshot.
type readOnlyUnitOfWorkFactory struct {
	db    *gorm.DB
	cb    circuitbreaker.CircuitBreaker
	retry retry.Retry
}

func NewReadOnlyUnitOfWorkFactory(db *gorm.DB, cb circuitbreaker.CircuitBreaker, retry retry.Retry) UnitOfWorkFactory {
	return &readOnlyUnitOfWorkFactory{db: db, cb: cb, retry: retry}
}

// New opens the transaction through the breaker so an unreachable store trips
// it before any query runs.
func (f *readOnlyUnitOfWorkFactory) New(ctx context.Context) (UnitOfWork, error) {
	result, err := f.cb.Execute(func() (any, error) {
		tx := f.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
		if tx.Error != nil {
			return nil, tx.Error
		}
		return tx, nil
	})
	if err != nil {
		return nil, err
	}
	return &transactionDbUnitOfWork{tx: result.(*gorm.DB), cb: f.cb, retry: f.retry}, nil
}
