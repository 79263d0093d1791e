package converter

import (
	"github.com/google/uuid"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
)

// SpaGroomingToResponse converts a SpaGroomingAppointment entity to DTO
func SpaGroomingToResponse(appointment *entity.SpaGroomingAppointment) *dto.SpaGroomingResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.SpaGroomingResponse{
		ID:          appointment.ID,
		PetID:       appointment.PetID,
		ClientID:    appointment.ClientID,
		BranchID:    appointment.BranchID,
		ServiceType: string(appointment.ServiceType),
		Date:        appointment.SlotDate(),
		Time:        appointment.Time,
		Status:      string(appointment.Status),
		Notes:       appointment.Notes,
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}

	if appointment.Pet.ID != uuid.Nil {
		response.Pet = PetToResponse(&appointment.Pet)
	}
	if appointment.Branch.ID != uuid.Nil {
		response.Branch = BranchToResponse(&appointment.Branch)
	}

	return response
}

// SpaGroomingsToResponses converts a slice of SpaGroomingAppointment entities to DTOs
func SpaGroomingsToResponses(appointments []entity.SpaGroomingAppointment) []dto.SpaGroomingResponse {
	responses := make([]dto.SpaGroomingResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *SpaGroomingToResponse(&appointments[i]))
	}
	return responses
}
