package implementation

import (
	"context"
	"time"

	"github.com/jt828/storefront-telemetry/pkg/telemetry"
	"gorm.io/gorm"
)

type metricsStartTimeKey struct{}

// GormMetricsPlugin times every gorm callback chain into the telemetry engine.
type GormMetricsPlugin struct {
	producer telemetry.Producer
}

func NewGormMetricsPlugin(producer telemetry.Producer) *GormMetricsPlugin {
	return &GormMetricsPlugin{producer: producer}
}

func (p *GormMetricsPlugin) Name() string {
	return "telemetry"
}

func (p *GormMetricsPlugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Create().Before("gorm:create").Register("telemetry:before_create", p.before); err != nil {
		return err
	}
	if err := db.Callback().Create().After("gorm:create").Register("telemetry:after_create", p.after("create")); err != nil {
		return err
	}

	if err := db.Callback().Query().Before("gorm:query").Register("telemetry:before_query", p.before); err != nil {
		return err
	}
	if err := db.Callback().Query().After("gorm:query").Register("telemetry:after_query", p.after("query")); err != nil {
		return err
	}

	if err := db.Callback().Update().Before("gorm:update").Register("telemetry:before_update", p.before); err != nil {
		return err
	}
	if err := db.Callback().Update().After("gorm:update").Register("telemetry:after_update", p.after("update")); err != nil {
		return err
	}

	if err := db.Callback().Delete().Before("gorm:delete").Register("telemetry:before_delete", p.before); err != nil {
		return err
	}
	if err := db.Callback().Delete().After("gorm:delete").Register("telemetry:after_delete", p.after("delete")); err != nil {
		return err
	}

	if err := db.Callback().Row().Before("gorm:row").Register("telemetry:before_row", p.before); err != nil {
		return err
	}
	if err := db.Callback().Row().After("gorm:row").Register("telemetry:after_row", p.after("row")); err != nil {
		return err
	}

	if err := db.Callback().Raw().Before("gorm:raw").Register("telemetry:before_raw", p.before); err != nil {
		return err
	}
	return db.Callback().Raw().After("gorm:raw").Register("telemetry:after_raw", p.after("raw"))
}

func (p *GormMetricsPlugin) before(db *gorm.DB) {
	db.Statement.Context = context.WithValue(db.Statement.Context, metricsStartTimeKey{}, time.Now())
}

func (p *GormMetricsPlugin) after(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		labels := telemetry.Labels{telemetry.LabelOperation: operation}

		p.producer.IncrementCounter(telemetry.DBQueriesTotal, 1, labels)

		if db.Error != nil {
			p.producer.IncrementCounter(telemetry.DBQueryErrorsTotal, 1, labels)
		}

		startTime, ok := db.Statement.Context.Value(metricsStartTimeKey{}).(time.Time)
		if ok {
			p.producer.Observe(telemetry.DBQueryDurationSeconds, time.Since(startTime).Seconds(), labels)
		}
	}
}
