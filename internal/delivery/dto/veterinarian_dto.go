package dto

import "github.com/google/uuid"

// Request DTOs

type CreateVeterinarianRequest struct {
	Email         string     `json:"email" validate:"required,email"`
	Password      string     `json:"password" validate:"required,min=8"`
	FullName      string     `json:"full_name" validate:"required,min=3,max=255"`
	LicenseNumber string     `json:"license_number" validate:"required,max=50"`
	Specialty     string     `json:"specialty" validate:"required,max=100"`
	Biography     string     `json:"biography" validate:"omitempty"`
	BranchID      *uuid.UUID `json:"branch_id" validate:"omitempty"`
}

type UpdateVeterinarianRequest struct {
	FullName  *string    `json:"full_name" validate:"omitempty,min=3,max=255"`
	Specialty *string    `json:"specialty" validate:"omitempty,max=100"`
	Biography *string    `json:"biography" validate:"omitempty"`
	BranchID  *uuid.UUID `json:"branch_id" validate:"omitempty"`
	IsActive  *bool      `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type VeterinarianResponse struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	FullName      string     `json:"full_name"`
	LicenseNumber string     `json:"license_number"`
	Specialty     string     `json:"specialty"`
	Biography     string     `json:"biography,omitempty"`
	BranchID      *uuid.UUID `json:"branch_id,omitempty"`
	IsActive      bool       `json:"is_active"`
}

type VeterinarianListResponse struct {
	Veterinarians []VeterinarianResponse `json:"veterinarians"`
	Total         int                    `json:"total"`
}
