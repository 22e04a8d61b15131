package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type SaleDataEntity struct {
	Id         int64     `gorm:"column:id"`
	UserId     int64     `gorm:"column:user_id"`
	SaleTime   time.Time `gorm:"column:sale_time"`
	TotalCents int64     `gorm:"column:total_cents"`
	Status     string    `gorm:"column:status"`
}

func (dataEntity *SaleDataEntity) TableName() string {
	return "main.sales"
}

func (dataEntity *OrderCountsDataEntity) ToDomain() OrderCounts {
	return OrderCounts{
		Total:      dataEntity.Total,
		Successful: dataEntity.Successful,
		Failed:     dataEntity.Failed,
		Revenue:    decimal.New(dataEntity.RevenueCents, -2),
	}
}

type OrderCountsDataEntity struct {
	Total        int64 `gorm:"column:total"`
	Successful   int64 `gorm:"column:successful"`
	Failed       int64 `gorm:"column:failed"`
	RevenueCents int64 `gorm:"column:revenue_cents"`
}

type OrderCounts struct {
	Total      int64
	Successful int64
	Failed     int64
	Revenue    decimal.Decimal
}
