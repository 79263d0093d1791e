package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	PetID    uuid.UUID `json:"pet_id" validate:"required"`
	BranchID uuid.UUID `json:"branch_id" validate:"required"`
	Date     string    `json:"date" validate:"required"`
	Time     string    `json:"time" validate:"required"`
	Reason   string    `json:"reason" validate:"required"`
	Notes    string    `json:"notes" validate:"omitempty"`
}

// UpdateAppointmentRequest is a partial update; absent fields stay untouched
type UpdateAppointmentRequest struct {
	VeterinarianID *uuid.UUID `json:"veterinarian_id" validate:"omitempty"`
	Date           *string    `json:"date" validate:"omitempty"`
	Time           *string    `json:"time" validate:"omitempty"`
	Reason         *string    `json:"reason" validate:"omitempty"`
	Status         *string    `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Notes          *string    `json:"notes" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             uuid.UUID       `json:"id"`
	PetID          uuid.UUID       `json:"pet_id"`
	ClientID       uuid.UUID       `json:"client_id"`
	VeterinarianID *uuid.UUID      `json:"veterinarian_id,omitempty"`
	BranchID       uuid.UUID       `json:"branch_id"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	Reason         string          `json:"reason"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes,omitempty"`
	Pet            *PetResponse    `json:"pet,omitempty"`
	Branch         *BranchResponse `json:"branch,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type AvailableSlotsResponse struct {
	Date     string    `json:"date"`
	BranchID uuid.UUID `json:"branch_id"`
	Slots    []string  `json:"slots"`
}

type AvailableDatesResponse struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Dates []string `json:"dates"`
}
