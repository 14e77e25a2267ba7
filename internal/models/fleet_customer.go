package models

import "time"

const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
)

// Customer owns accounts and users
type Customer struct {
	CustomerID      int64     `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customer_id"`
	CustomerName    string    `gorm:"column:customer_name;type:varchar(255);not null" json:"customer_name"`
	CustomerClass   string    `gorm:"column:customer_class;type:varchar(50)" json:"customer_class"`
	ReferenceNumber string    `gorm:"column:reference_number;type:varchar(50)" json:"reference_number"`
	Status          string    `gorm:"column:status;type:varchar(20);not null;default:'active'" json:"status"`
	IsDeleted       bool      `gorm:"column:is_deleted;not null;default:false;index" json:"is_deleted"`
	CreatedAt       time.Time `gorm:"column:created_at;not null" json:"created_at"`
	CreatedBy       *int64    `gorm:"column:created_by" json:"created_by"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
	UpdatedBy       *int64    `gorm:"column:updated_by" json:"updated_by"`
}

func (c *Customer) TableName() string {
	return "customers"
}
