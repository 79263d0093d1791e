package converter

import (
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
)

// BranchToResponse converts a Branch entity to BranchResponse DTO
func BranchToResponse(branch *entity.Branch) *dto.BranchResponse {
	if branch == nil {
		return nil
	}

	services := make([]string, 0, len(branch.Services))
	for _, svc := range branch.Services {
		services = append(services, string(svc))
	}

	return &dto.BranchResponse{
		ID:           branch.ID,
		Name:         branch.Name,
		Address:      branch.Address,
		Services:     services,
		IsActive:     branch.IsActive,
		Is24Hours:    branch.Is24Hours,
		OpeningHours: branch.OpeningHours,
		CreatedAt:    branch.CreatedAt,
		UpdatedAt:    branch.UpdatedAt,
	}
}

// BranchesToResponses converts a slice of Branch entities to DTOs
func BranchesToResponses(branches []entity.Branch) []dto.BranchResponse {
	responses := make([]dto.BranchResponse, 0, len(branches))
	for i := range branches {
		responses = append(responses, *BranchToResponse(&branches[i]))
	}
	return responses
}
