package converter

import (
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
)

// ClientToResponse converts a ClientProfile entity to ClientResponse DTO.
// Expects the User relation to be preloaded; Pets are included when loaded.
func ClientToResponse(client *entity.ClientProfile) *dto.ClientResponse {
	if client == nil {
		return nil
	}

	response := &dto.ClientResponse{
		ID:          client.UserID,
		Email:       client.User.Email,
		FullName:    client.User.FullName,
		PhoneNumber: client.PhoneNumber,
		Address:     client.Address,
	}

	if len(client.Pets) > 0 {
		response.Pets = PetsToResponses(client.Pets)
	}

	return response
}

// ClientsToResponses converts a slice of ClientProfile entities to DTOs
func ClientsToResponses(clients []entity.ClientProfile) []dto.ClientResponse {
	responses := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, *ClientToResponse(&clients[i]))
	}
	return responses
}
