package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookSpaGroomingRequest struct {
	PetID       uuid.UUID `json:"pet_id" validate:"required"`
	BranchID    uuid.UUID `json:"branch_id" validate:"required"`
	ServiceType string    `json:"service_type" validate:"required,oneof=spa grooming"`
	Date        string    `json:"date" validate:"required"`
	Time        string    `json:"time" validate:"required"`
	Notes       string    `json:"notes" validate:"omitempty"`
}

type UpdateSpaGroomingRequest struct {
	ServiceType *string `json:"service_type" validate:"omitempty,oneof=spa grooming"`
	Date        *string `json:"date" validate:"omitempty"`
	Time        *string `json:"time" validate:"omitempty"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Notes       *string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type SpaGroomingResponse struct {
	ID          uuid.UUID       `json:"id"`
	PetID       uuid.UUID       `json:"pet_id"`
	ClientID    uuid.UUID       `json:"client_id"`
	BranchID    uuid.UUID       `json:"branch_id"`
	ServiceType string          `json:"service_type"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes,omitempty"`
	Pet         *PetResponse    `json:"pet,omitempty"`
	Branch      *BranchResponse `json:"branch,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type SpaGroomingListResponse struct {
	Appointments []SpaGroomingResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
