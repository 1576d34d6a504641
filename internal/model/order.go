package model

import (
	"fmt"
	"time"
)

// OrderStatus is the lifecycle state of an order. Transitions happen in
// upstream systems; this service treats the value as an opaque filter.
type OrderStatus string

const (
	OrderStatusNew     OrderStatus = "NEW"
	OrderStatusPaid    OrderStatus = "PAID"
	OrderStatusShipped OrderStatus = "SHIPPED"
)

// ParseOrderStatus validates a raw status value against the known set.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch OrderStatus(raw) {
	case OrderStatusNew, OrderStatusPaid, OrderStatusShipped:
		return OrderStatus(raw), nil
	}
	return "", fmt.Errorf("unknown order status %q", raw)
}

// Order represents a customer order. CustomerID is a weak reference resolved
// by lookup.
type Order struct {
	ID         uint        `json:"id" gorm:"primarykey"`
	Date       time.Time   `json:"date" gorm:"index;not null"`
	Status     OrderStatus `json:"status" gorm:"type:varchar(20);index;not null"`
	CustomerID uint        `json:"customer_id" gorm:"index;not null"`
	Items      []OrderItem `json:"items"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// OrderItem is one product position within an order. UnitPrice is the price
// at the time of the order and may differ from the product's current price.
type OrderItem struct {
	ID        uint    `json:"id" gorm:"primarykey"`
	OrderID   uint    `json:"order_id" gorm:"index;not null"`
	ProductID uint    `json:"product_id" gorm:"index;not null"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	UnitPrice float64 `json:"unit_price" gorm:"not null"`
}
