package models

import "time"

type Product struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `json:"description"`
	Price         float64   `gorm:"not null" json:"price"`
	StockQuantity int       `gorm:"not null;default:0" json:"stock_quantity"`
	CategoryID    uint      `gorm:"index;not null" json:"category_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
