package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePetRequest struct {
	ClientID  uuid.UUID `json:"client_id" validate:"required"`
	Name      string    `json:"name" validate:"required,max=100"`
	Species   string    `json:"species" validate:"required,max=50"`
	Breed     string    `json:"breed" validate:"omitempty,max=100"`
	BirthDate string    `json:"birth_date" validate:"omitempty"`
	WeightKg  float64   `json:"weight_kg" validate:"omitempty,gte=0"`
}

type UpdatePetRequest struct {
	Name      *string  `json:"name" validate:"omitempty,max=100"`
	Species   *string  `json:"species" validate:"omitempty,max=50"`
	Breed     *string  `json:"breed" validate:"omitempty,max=100"`
	BirthDate *string  `json:"birth_date" validate:"omitempty"`
	WeightKg  *float64 `json:"weight_kg" validate:"omitempty,gte=0"`
}

// Response DTOs

type PetResponse struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"client_id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     string    `json:"breed,omitempty"`
	BirthDate string    `json:"birth_date,omitempty"`
	WeightKg  float64   `json:"weight_kg,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PetListResponse struct {
	Pets  []PetResponse `json:"pets"`
	Total int           `json:"total"`
}
