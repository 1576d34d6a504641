package model

import (
	"time"
)

// Customer represents a shop customer
type Customer struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	FullName  string    `json:"full_name" gorm:"type:varchar(255);not null;index"`
	Email     string    `json:"email" gorm:"type:varchar(255);unique;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
