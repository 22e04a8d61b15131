package repository

import (
	"context"
	"sync"

	"github.com/jt828/storefront-telemetry/pkg/circuitbreaker"
	"github.com/jt828/storefront-telemetry/pkg/retry"
	"gorm.io/gorm"
)

type UnitOfWork interface {
	Commit(ctx context.Context) error
	Abort(ctx context.Context) error
	BusinessRecordRepository() BusinessRecordRepository
}

type transactionDbUnitOfWork struct {
	tx                           *gorm.DB
	cb                           circuitbreaker.CircuitBreaker
	retry                        retry.Retry
	businessRecordRepository     BusinessRecordRepository
	businessRecordRepositoryOnce sync.Once
}

func (u *transactionDbUnitOfWork) BusinessRecordRepository() BusinessRecordRepository {
	u.businessRecordRepositoryOnce.Do(func() {
		u.businessRecordRepository = NewBusinessRecordRepository(u.tx, u.cb, u.retry)
	})
	return u.businessRecordRepository
}

func (u *transactionDbUnitOfWork) Commit(ctx context.Context) error {
	return u.tx.WithContext(ctx).Commit().Error
}

func (u *transactionDbUnitOfWork) Abort(ctx context.Context) error {
	return u.tx.WithContext(ctx).Rollback().Error
}
