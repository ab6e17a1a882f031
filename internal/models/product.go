package models

import "time"

// Product represents a product in the store catalog.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"product_name" gorm:"column:product_name;type:varchar(100)" validate:"required,min=1,max=100"`
	Price       float64   `json:"price"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductRequest is the create/update payload for a product. Price is left
// unconstrained; any numeric value, zero included, is stored as-is.
type ProductRequest struct {
	Name        string  `json:"product_name" validate:"required,min=1,max=100"`
	Price       float64 `json:"price"`
	Description string  `json:"description" validate:"omitempty,max=500"`
}
