package model

import (
	"time"
)

// Product represents the product master data. Upstream processes own the
// catalog; this service only reads it.
type Product struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	SKU       string    `json:"sku" gorm:"type:varchar(100);unique;not null"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Price     float64   `json:"price" gorm:"not null"`
	Stock     int       `json:"stock" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
