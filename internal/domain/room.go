package domain

import "time"

type Room struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required"`
	Description  string    `json:"description,omitempty"`
	Capacity     int       `json:"capacity" validate:"required,gt=0"`
	PricePerHour float64   `json:"price_per_hour" validate:"gte=0"`
	PricePerDay  float64   `json:"price_per_day" validate:"gte=0"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
