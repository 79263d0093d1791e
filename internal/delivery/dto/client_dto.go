package dto

import "github.com/google/uuid"

// Request DTOs

type UpdateClientRequest struct {
	FullName    *string `json:"full_name" validate:"omitempty,min=3,max=255"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
	Address     *string `json:"address" validate:"omitempty"`
}

// Response DTOs

type ClientResponse struct {
	ID          uuid.UUID     `json:"id"`
	Email       string        `json:"email"`
	FullName    string        `json:"full_name"`
	PhoneNumber string        `json:"phone_number,omitempty"`
	Address     string        `json:"address,omitempty"`
	Pets        []PetResponse `json:"pets,omitempty"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}
