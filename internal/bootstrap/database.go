package bootstrap

import (
	"errors"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jt828/storefront-telemetry/internal/constant"
	"github.com/jt828/storefront-telemetry/internal/repository"
	"github.com/jt828/storefront-telemetry/pkg/circuitbreaker"
	cbImpl "github.com/jt828/storefront-telemetry/pkg/circuitbreaker/implementation"
	obsImpl "github.com/jt828/storefront-telemetry/pkg/observability/implementation"
	"github.com/jt828/storefront-telemetry/pkg/retry"
	retryImpl "github.com/jt828/storefront-telemetry/pkg/retry/implementation"
	"github.com/jt828/storefront-telemetry/pkg/telemetry"
	"github.com/sony/gobreaker/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const BreakerName = "postgresql"

type Database struct {
	DB                *gorm.DB
	CircuitBreaker    circuitbreaker.CircuitBreaker
	UnitOfWorkFactory repository.UnitOfWorkFactory
}

type DatabaseConfig struct {
	DSN string
	// BreakerFailures consecutive failures open the breaker for BreakerTimeout.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// InitializeDatabase does not contact the server, so the service can start
// while the store is down.
// Reports query the store once per request and fall back to memory on failure,
// so the retry policy makes exactly one attempt.
func InitializeDatabase(cfg DatabaseConfig, producer telemetry.Producer) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.Use(obsImpl.NewGormMetricsPlugin(producer)); err != nil {
		return nil, err
	}

	breakerLabels := telemetry.Labels{constant.LabelName: BreakerName}
	producer.SetGauge(constant.CircuitBreakerState, float64(circuitbreaker.Closed), breakerLabels)
	cb := cbImpl.NewCircuitBreaker(gobreaker.Settings{
		Name:    BreakerName,
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
	}, circuitbreaker.WithStateListener(func(_ string, _, to circuitbreaker.State) {
		producer.SetGauge(constant.CircuitBreakerState, float64(to), breakerLabels)
	}))

	retry := retryImpl.NewRetry(0, retry.WithInterval(100*time.Millisecond), retry.WithRetryable(IsRetryable))
	uowFactory := repository.NewReadOnlyUnitOfWorkFactory(db, cb, retry)

	return &Database{
		DB:                db,
		CircuitBreaker:    cb,
		UnitOfWorkFactory: uowFactory,
	}, nil
}

func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001": // serialization_failure
			return true
		case "40P01": // deadlock_detected
			return true
		case "08006": // connection_failure
			return true
		case "08001": // sqlclient_unable_to_establish_sqlconnection
			return true
		case "08004": // sqlserver_rejected_establishment_of_sqlconnection
			return true
		}
	}

	var netErr *net.OpError
	return errors.As(err, &netErr)
}
