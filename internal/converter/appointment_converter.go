package converter

import (
	"github.com/google/uuid"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to DTO.
// Pet and Branch are included when preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:             appointment.ID,
		PetID:          appointment.PetID,
		ClientID:       appointment.ClientID,
		VeterinarianID: appointment.VeterinarianID,
		BranchID:       appointment.BranchID,
		Date:           appointment.SlotDate(),
		Time:           appointment.Time,
		Reason:         appointment.Reason,
		Status:         string(appointment.Status),
		Notes:          appointment.Notes,
		CreatedAt:      appointment.CreatedAt,
		UpdatedAt:      appointment.UpdatedAt,
	}

	if appointment.Pet.ID != uuid.Nil {
		response.Pet = PetToResponse(&appointment.Pet)
	}
	if appointment.Branch.ID != uuid.Nil {
		response.Branch = BranchToResponse(&appointment.Branch)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}
