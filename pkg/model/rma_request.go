package model

import "time"

type RmaRequestDataEntity struct {
	Id          int64     `gorm:"column:id"`
	SaleId      int64     `gorm:"column:sale_id"`
	UserId      int64     `gorm:"column:user_id"`
	Status      string    `gorm:"column:status"`
	Disposition *string   `gorm:"column:disposition"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (dataEntity *RmaRequestDataEntity) TableName() string {
	return "main.rma_requests"
}

func (dataEntity *RefundCountsDataEntity) ToDomain() RefundCounts {
	return RefundCounts(*dataEntity)
}

type RefundCountsDataEntity struct {
	Total    int64 `gorm:"column:total"`
	Approved int64 `gorm:"column:approved"`
	Rejected int64 `gorm:"column:rejected"`
	Pending  int64 `gorm:"column:pending"`
}

type RefundCounts struct {
	Total    int64
	Approved int64
	Rejected int64
	Pending  int64
}
