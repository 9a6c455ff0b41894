package models

import "time"

// Order is immutable once created. Its items carry the product price frozen
// at checkout time, so later catalog price changes never touch past orders.
type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      uint        `gorm:"index;not null" json:"user_id"`
	Reference   string      `gorm:"uniqueIndex" json:"reference"`
	TotalAmount float64     `gorm:"not null" json:"total_amount"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
	CreatedAt   time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	OrderID         uint      `gorm:"index;not null" json:"order_id"`
	ProductID       uint      `gorm:"not null" json:"product_id"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	PriceAtPurchase float64   `gorm:"not null" json:"price_at_purchase"`
	CreatedAt       time.Time `json:"created_at"`
}
