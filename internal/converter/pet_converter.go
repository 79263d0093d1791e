package converter

import (
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
)

// PetToResponse converts a Pet entity to PetResponse DTO
func PetToResponse(pet *entity.Pet) *dto.PetResponse {
	if pet == nil {
		return nil
	}

	response := &dto.PetResponse{
		ID:        pet.ID,
		ClientID:  pet.ClientID,
		Name:      pet.Name,
		Species:   pet.Species,
		Breed:     pet.Breed,
		WeightKg:  pet.WeightKg,
		CreatedAt: pet.CreatedAt,
		UpdatedAt: pet.UpdatedAt,
	}

	if pet.BirthDate != nil {
		response.BirthDate = pet.BirthDate.Format("2006-01-02")
	}

	return response
}

// PetsToResponses converts a slice of Pet entities to PetResponse DTOs
func PetsToResponses(pets []entity.Pet) []dto.PetResponse {
	responses := make([]dto.PetResponse, 0, len(pets))
	for i := range pets {
		responses = append(responses, *PetToResponse(&pets[i]))
	}
	return responses
}
