package handler

import (
	"encoding/json"
	"net/http"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/delivery/http/middleware"
	"vetclinic-backend/internal/usecase"
	"vetclinic-backend/pkg/response"
	"vetclinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type CartHandler struct {
	cartUsecase usecase.CartUsecase
	validator   *validator.CustomValidator
}

func NewCartHandler(cartUsecase usecase.CartUsecase, validator *validator.CustomValidator) *CartHandler {
	return &CartHandler{
		cartUsecase: cartUsecase,
		validator:   validator,
	}
}

// Get returns the authenticated user's cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	cart, err := h.cartUsecase.Get(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get cart")
		return
	}

	response.Success(w, http.StatusOK, "Cart retrieved successfully", cart)
}

// AddItem adds a product to the cart, merging quantities for repeat adds
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	cart, err := h.cartUsecase.AddItem(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProductNotFound:
			response.NotFound(w, "Product not found")
		case usecase.ErrInsufficientStock:
			response.Conflict(w, "Not enough stock for requested quantity")
		default:
			response.InternalServerError(w, "Failed to add item to cart")
		}
		return
	}

	response.Success(w, http.StatusOK, "Item added to cart", cart)
}

// UpdateItem sets the quantity of a cart line; zero removes the line
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	productID, err := uuid.Parse(mux.Vars(r)["productId"])
	if err != nil {
		response.BadRequest(w, "Invalid product ID")
		return
	}

	var req dto.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	cart, err := h.cartUsecase.UpdateItem(r.Context(), userID, productID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProductNotFound:
			response.NotFound(w, "Product not found")
		case usecase.ErrItemNotInCart:
			response.NotFound(w, "Product is not in the cart")
		case usecase.ErrInsufficientStock:
			response.Conflict(w, "Not enough stock for requested quantity")
		default:
			response.InternalServerError(w, "Failed to update cart")
		}
		return
	}

	response.Success(w, http.StatusOK, "Cart updated successfully", cart)
}

// RemoveItem drops a product from the cart
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	productID, err := uuid.Parse(mux.Vars(r)["productId"])
	if err != nil {
		response.BadRequest(w, "Invalid product ID")
		return
	}

	cart, err := h.cartUsecase.RemoveItem(r.Context(), userID, productID)
	if err != nil {
		switch err {
		case usecase.ErrItemNotInCart:
			response.NotFound(w, "Product is not in the cart")
		default:
			response.InternalServerError(w, "Failed to remove item from cart")
		}
		return
	}

	response.Success(w, http.StatusOK, "Item removed from cart", cart)
}

// Clear empties the cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.cartUsecase.Clear(r.Context(), userID); err != nil {
		response.InternalServerError(w, "Failed to clear cart")
		return
	}

	response.Success(w, http.StatusOK, "Cart cleared successfully", nil)
}
