package models

import "time"

type Course struct {
	ID            string    `json:"id"`
	Name          string    `json:"name" validate:"required"`
	Code          string    `json:"code" validate:"required"`
	DurationHours float64   `json:"duration_hours"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
