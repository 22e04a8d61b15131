package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jt828/storefront-telemetry/internal/constant"
	"github.com/jt828/storefront-telemetry/internal/repository"
	"github.com/jt828/storefront-telemetry/pkg/model"
	"github.com/jt828/storefront-telemetry/pkg/observability"
	"github.com/jt828/storefront-telemetry/pkg/telemetry"
	"github.com/shopspring/decimal"
)

const (
	orderRateWindow  = time.Minute
	refundRateWindow = 24 * time.Hour
	errorRateWindow  = time.Minute
)

type BusinessMetricsService interface {
	// GetBusinessMetrics never fails: if the business store cannot be read
	// the report is built from in-memory figures only.
	GetBusinessMetrics(ctx context.Context) telemetry.BusinessMetrics
}

type businessMetricsService struct {
	engine       telemetry.Consumer
	uowFactory   repository.UnitOfWorkFactory
	log          observability.Logger
	tracer       observability.Tracer
	queryTimeout time.Duration
}

// NewBusinessMetricsService builds a memory-only service when uowFactory is nil.
func NewBusinessMetricsService(
	engine telemetry.Consumer,
	uowFactory repository.UnitOfWorkFactory,
	log observability.Logger,
	tracer observability.Tracer,
	queryTimeout time.Duration,
) BusinessMetricsService {
	return &businessMetricsService{
		engine:       engine,
		uowFactory:   uowFactory,
		log:          log,
		tracer:       tracer,
		queryTimeout: queryTimeout,
	}
}

func (s *businessMetricsService) GetBusinessMetrics(ctx context.Context) telemetry.BusinessMetrics {
	report := s.fromMemory()
	if s.uowFactory == nil {
		return report
	}

	orders, refunds, err := s.queryStore(ctx)
	if err != nil {
		s.log.Warn("business store unavailable, reporting in-memory figures",
			observability.String("reason", repository.StoreFailureReason(err)),
			observability.Err(err),
		)
		return report
	}

	report.Orders.Total = orders.Total
	report.Orders.Successful = orders.Successful
	report.Orders.Failed = orders.Failed
	report.Orders.Revenue = orders.Revenue
	report.Refunds.Total = refunds.Total
	report.Refunds.Approved = refunds.Approved
	report.Refunds.Rejected = refunds.Rejected
	report.Refunds.Pending = refunds.Pending
	report.Source = telemetry.SourceStore
	return report
}

func (s *businessMetricsService) fromMemory() telemetry.BusinessMetrics {
	count := func(name string, labels telemetry.Labels) int64 {
		return int64(s.engine.Counter(name, labels))
	}
	status := func(v string) telemetry.Labels {
		return telemetry.Labels{constant.LabelStatus: v}
	}
	latency := s.engine.HistogramStats(constant.RequestDurationSeconds, nil)

	return telemetry.BusinessMetrics{
		Orders: telemetry.OrderMetrics{
			Total:         count(constant.OrdersTotal, nil),
			Successful:    count(constant.OrdersTotal, status(constant.OrderOutcomeSuccess)),
			Failed:        count(constant.OrdersTotal, status(constant.OrderOutcomeFailed)),
			Revenue:       decimal.Zero,
			RatePerMinute: s.engine.Rate(constant.OrdersTotal, orderRateWindow, nil) * orderRateWindow.Seconds(),
		},
		Refunds: telemetry.RefundMetrics{
			Total:      count(constant.RefundsTotal, nil),
			Approved:   count(constant.RefundsTotal, status(constant.RefundOutcomeApproved)),
			Rejected:   count(constant.RefundsTotal, status(constant.RefundOutcomeRejected)),
			Pending:    count(constant.RefundsTotal, status(constant.RefundOutcomePending)),
			RatePerDay: s.engine.Rate(constant.RefundsTotal, refundRateWindow, nil) * refundRateWindow.Seconds(),
		},
		Errors: telemetry.ErrorMetrics{
			Total:         s.engine.Counter(constant.ErrorsTotal, nil),
			RatePerMinute: s.engine.Rate(constant.ErrorsTotal, errorRateWindow, nil) * errorRateWindow.Seconds(),
			ByType: map[string]float64{
				constant.ErrorClassClient: s.engine.Counter(constant.HTTPErrors, telemetry.Labels{constant.LabelType: constant.ErrorClassClient}),
				constant.ErrorClassServer: s.engine.Counter(constant.HTTPErrors, telemetry.Labels{constant.LabelType: constant.ErrorClassServer}),
			},
		},
		Performance: telemetry.PerformanceMetrics{
			AvgResponseTimeMs: latency.Avg * 1000,
			P95ResponseTimeMs: latency.P95 * 1000,
			P99ResponseTimeMs: latency.P99 * 1000,
		},
		Source: telemetry.SourceMemory,
	}
}

// queryStore makes a single bounded attempt; panics from the driver are
// returned as errors.
func (s *businessMetricsService) queryStore(ctx context.Context) (orders *model.OrderCounts, refunds *model.RefundCounts, err error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "BusinessMetricsService.queryStore")
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			orders, refunds = nil, nil
			err = fmt.Errorf("business store query panicked: %v", r)
		}
		if err != nil {
			span.RecordError(err)
			span.SetAttribute("store.failure_reason", repository.StoreFailureReason(err))
		}
	}()

	uow, err := s.uowFactory.New(ctx)
	if err != nil {
		return nil, nil, err
	}

	orders, err = uow.BusinessRecordRepository().OrderCounts(ctx)
	if err != nil {
		_ = uow.Abort(ctx)
		return nil, nil, err
	}

	refunds, err = uow.BusinessRecordRepository().RefundCounts(ctx)
	if err != nil {
		_ = uow.Abort(ctx)
		return nil, nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return orders, refunds, nil
}
