package repository

import (
	"context"

	"github.com/jt828/storefront-telemetry/internal/constant"
	"github.com/jt828/storefront-telemetry/pkg/circuitbreaker"
	"github.com/jt828/storefront-telemetry/pkg/model"
	"github.com/jt828/storefront-telemetry/pkg/retry"
	"gorm.io/gorm"
)

const orderCountsQuery = `SELECT COUNT(*) AS total,
COALESCE(SUM(CASE WHEN status IN ? THEN 1 ELSE 0 END), 0) AS successful,
COALESCE(SUM(CASE WHEN status IN ? THEN 1 ELSE 0 END), 0) AS failed,
COALESCE(SUM(CASE WHEN status IN ? THEN total_cents ELSE 0 END), 0) AS revenue_cents
FROM main.sales`

// Approved: completed with any disposition but a rejection. Rejected: completed
// with a rejection. Pending: not yet completed or cancelled.
const refundCountsQuery = `SELECT COUNT(*) AS total,
COALESCE(SUM(CASE WHEN status = ? AND disposition IS NOT NULL AND disposition <> ? THEN 1 ELSE 0 END), 0) AS approved,
COALESCE(SUM(CASE WHEN status = ? AND disposition = ? THEN 1 ELSE 0 END), 0) AS rejected,
COALESCE(SUM(CASE WHEN status NOT IN ? THEN 1 ELSE 0 END), 0) AS pending
FROM main.rma_requests`

type BusinessRecordRepository interface {
	OrderCounts(ctx context.Context) (*model.OrderCounts, error)
	RefundCounts(ctx context.Context) (*model.RefundCounts, error)
}

type BusinessRecordRepositoryImpl struct {
	db    *gorm.DB
	cb    circuitbreaker.CircuitBreaker
	retry retry.Retry
}

func NewBusinessRecordRepository(db *gorm.DB, cb circuitbreaker.CircuitBreaker, retry retry.Retry) BusinessRecordRepository {
	return &BusinessRecordRepositoryImpl{db: db, cb: cb, retry: retry}
}

func (r *BusinessRecordRepositoryImpl) OrderCounts(ctx context.Context) (*model.OrderCounts, error) {
	result, err := r.cb.Execute(func() (any, error) {
		var counts *model.OrderCounts
		err := r.retry.Execute(ctx, func() error {
			var entity model.OrderCountsDataEntity
			err := r.db.WithContext(ctx).
				Raw(orderCountsQuery,
					constant.SuccessfulSaleStatuses,
					constant.FailedSaleStatuses,
					constant.RevenueSaleStatuses,
				).
				Scan(&entity).Error
			if err != nil {
				return err
			}
			c := entity.ToDomain()
			counts = &c
			return nil
		})
		if err != nil {
			return nil, err
		}
		return counts, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*model.OrderCounts), nil
}

func (r *BusinessRecordRepositoryImpl) RefundCounts(ctx context.Context) (*model.RefundCounts, error) {
	result, err := r.cb.Execute(func() (any, error) {
		var counts *model.RefundCounts
		err := r.retry.Execute(ctx, func() error {
			var entity model.RefundCountsDataEntity
			err := r.db.WithContext(ctx).
				Raw(refundCountsQuery,
					constant.RmaStatusCompleted, constant.RmaDispositionReject,
					constant.RmaStatusCompleted, constant.RmaDispositionReject,
					constant.TerminalRmaStatuses,
				).
				Scan(&entity).Error
			if err != nil {
				return err
			}
			c := entity.ToDomain()
			counts = &c
			return nil
		})
		if err != nil {
			return nil, err
		}
		return counts, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*model.RefundCounts), nil
}
