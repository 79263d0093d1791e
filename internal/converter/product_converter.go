package converter

import (
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
)

// ProductToResponse converts a Product entity to ProductResponse DTO
func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	if product == nil {
		return nil
	}

	return &dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Price:       product.Price,
		Stock:       product.Stock,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ProductsToResponses converts a slice of Product entities to DTOs
func ProductsToResponses(products []entity.Product) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *ProductToResponse(&products[i]))
	}
	return responses
}
