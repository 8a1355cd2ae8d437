package models

import "time"

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypeTakeaway OrderType = "takeaway"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeDineIn || t == OrderTypeTakeaway
}

// Order is created once per checkout. After creation only Status,
// UpdatedAt and Version ever change; the items and the total are frozen.
type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	UserID     uint        `gorm:"not null;index" json:"user_id"`
	User       User        `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	OrderType  OrderType   `gorm:"type:varchar(20);not null" json:"order_type"`
	TotalPrice float64     `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Notes      string      `gorm:"type:text" json:"notes"`
	Version    uint        `gorm:"not null;default:1" json:"version"`
	CreatedAt  time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"not null" json:"updated_at"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
}
