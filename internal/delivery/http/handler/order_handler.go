package handler

import (
	"encoding/json"
	"net/http"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/delivery/http/middleware"
	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/usecase"
	"vetclinic-backend/pkg/response"
	"vetclinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUsecase
	validator    *validator.CustomValidator
}

func NewOrderHandler(orderUsecase usecase.OrderUsecase, validator *validator.CustomValidator) *OrderHandler {
	return &OrderHandler{
		orderUsecase: orderUsecase,
		validator:    validator,
	}
}

// Checkout converts the authenticated user's cart into an order. Payment is
// simulated; the order is created as paid.
// @Summary Checkout the cart
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /orders/checkout [post]
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	order, err := h.orderUsecase.Checkout(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrCartEmpty:
			response.BadRequest(w, "Cart is empty")
		case usecase.ErrInsufficientStock:
			response.Conflict(w, "Not enough stock for one of the items")
		default:
			response.InternalServerError(w, "Failed to checkout")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Order placed successfully", order)
}

// ListMine returns the authenticated user's order history
// @Summary List my orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /orders/mine [get]
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	orders, err := h.orderUsecase.ListByClient(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list orders")
		return
	}

	response.Success(w, http.StatusOK, "Orders retrieved successfully", orders)
}

// ListAll returns every order (staff only)
// @Summary List all orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/orders [get]
func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list orders")
		return
	}

	response.Success(w, http.StatusOK, "Orders retrieved successfully", orders)
}

// GetByID returns a single order
// @Summary Get an order
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid order ID")
		return
	}

	order, err := h.orderUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrOrderNotFound:
			response.NotFound(w, "Order not found")
		default:
			response.InternalServerError(w, "Failed to get order")
		}
		return
	}

	roleID, _ := middleware.GetRoleIDFromContext(r.Context())
	if roleID == entity.RoleIDClient {
		userID, _ := middleware.GetUserIDFromContext(r.Context())
		if order.ClientID != userID {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}
	}

	response.Success(w, http.StatusOK, "Order retrieved successfully", order)
}

// UpdateStatus moves an order through its fulfilment lifecycle (staff only)
// @Summary Update order status
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.UpdateOrderStatusRequest true "Status"
// @Success 200 {object} response.Response
// @Router /admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid order ID")
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.orderUsecase.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrOrderNotFound:
			response.NotFound(w, "Order not found")
		default:
			response.InternalServerError(w, "Failed to update order status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Order status updated successfully", order)
}
