package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBranchRequest struct {
	Name         string   `json:"name" validate:"required,max=255"`
	Address      string   `json:"address" validate:"omitempty"`
	Services     []string `json:"services" validate:"required,min=1,dive,oneof=consultation shop hospitalization emergency spa grooming"`
	Is24Hours    bool     `json:"is_24_hours"`
	OpeningHours string   `json:"opening_hours" validate:"omitempty,max=50"`
}

type UpdateBranchRequest struct {
	Name         *string  `json:"name" validate:"omitempty,max=255"`
	Address      *string  `json:"address" validate:"omitempty"`
	Services     []string `json:"services" validate:"omitempty,dive,oneof=consultation shop hospitalization emergency spa grooming"`
	IsActive     *bool    `json:"is_active" validate:"omitempty"`
	Is24Hours    *bool    `json:"is_24_hours" validate:"omitempty"`
	OpeningHours *string  `json:"opening_hours" validate:"omitempty,max=50"`
}

// Response DTOs

type BranchResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address,omitempty"`
	Services     []string  `json:"services"`
	IsActive     bool      `json:"is_active"`
	Is24Hours    bool      `json:"is_24_hours"`
	OpeningHours string    `json:"opening_hours,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BranchListResponse struct {
	Branches []BranchResponse `json:"branches"`
	Total    int              `json:"total"`
}
