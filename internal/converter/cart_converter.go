package converter

import (
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
)

// CartToResponse converts a Cart entity to CartResponse DTO
func CartToResponse(cart *entity.Cart) *dto.CartResponse {
	if cart == nil {
		return nil
	}

	items := make([]dto.CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, dto.CartItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal(),
		})
	}

	return &dto.CartResponse{
		Items:     items,
		ItemCount: cart.ItemCount(),
		Total:     cart.Total(),
	}
}
