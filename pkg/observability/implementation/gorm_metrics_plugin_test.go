package implementation_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	obsImpl "github.com/jt828/storefront-telemetry/pkg/observability/implementation"
	"github.com/jt828/storefront-telemetry/pkg/telemetry"
	telemetryImpl "github.com/jt828/storefront-telemetry/pkg/telemetry/implementation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestGormMetricsPlugin(t *testing.T) {
	setup := func(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, telemetry.Engine) {
		t.Helper()
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		gormDB, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: db}), &gorm.Config{})
		require.NoError(t, err)

		engine := telemetryImpl.NewEngine()
		require.NoError(t, gormDB.Use(obsImpl.NewGormMetricsPlugin(engine)))
		return gormDB, mock, engine
	}
	row := telemetry.Labels{telemetry.LabelOperation: "row"}

	t.Run("successful query is counted and timed", func(t *testing.T) {
		gormDB, mock, engine := setup(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1`)).
			WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))

		var one int
		require.NoError(t, gormDB.Raw("SELECT 1").Scan(&one).Error)

		assert.Equal(t, 1.0, engine.Counter(telemetry.DBQueriesTotal, row))
		assert.Equal(t, 0.0, engine.Counter(telemetry.DBQueryErrorsTotal, row))
		assert.Equal(t, 1, engine.HistogramStats(telemetry.DBQueryDurationSeconds, row).Count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed query is counted as an error", func(t *testing.T) {
		gormDB, mock, engine := setup(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1`)).WillReturnError(errors.New("connection refused"))

		var one int
		assert.Error(t, gormDB.Raw("SELECT 1").Scan(&one).Error)

		assert.Equal(t, 1.0, engine.Counter(telemetry.DBQueriesTotal, row))
		assert.Equal(t, 1.0, engine.Counter(telemetry.DBQueryErrorsTotal, row))
	})
}
