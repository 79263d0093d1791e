package converter

import (
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
)

// VeterinarianToResponse converts a VeterinarianProfile entity to DTO.
// Expects the User relation to be preloaded.
func VeterinarianToResponse(vet *entity.VeterinarianProfile) *dto.VeterinarianResponse {
	if vet == nil {
		return nil
	}

	return &dto.VeterinarianResponse{
		ID:            vet.UserID,
		Email:         vet.User.Email,
		FullName:      vet.User.FullName,
		LicenseNumber: vet.LicenseNumber,
		Specialty:     vet.Specialty,
		Biography:     vet.Biography,
		BranchID:      vet.BranchID,
		IsActive:      vet.User.IsActive,
	}
}

// VeterinariansToResponses converts a slice of VeterinarianProfile entities to DTOs
func VeterinariansToResponses(vets []entity.VeterinarianProfile) []dto.VeterinarianResponse {
	responses := make([]dto.VeterinarianResponse, 0, len(vets))
	for i := range vets {
		responses = append(responses, *VeterinarianToResponse(&vets[i]))
	}
	return responses
}
