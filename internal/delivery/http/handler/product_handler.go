package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/delivery/http/middleware"
	"vetclinic-backend/internal/usecase"
	"vetclinic-backend/pkg/response"
	"vetclinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	validator      *validator.CustomValidator
}

func NewProductHandler(productUsecase usecase.ProductUsecase, validator *validator.CustomValidator) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		validator:      validator,
	}
}

// Create adds a product to the catalogue (admin only)
// @Summary Create a product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Product"
// @Success 201 {object} response.Response
// @Router /admin/products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	product, err := h.productUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create product")
		return
	}

	response.Success(w, http.StatusCreated, "Product created successfully", product)
}

// List returns the catalogue, optionally filtered by category
// @Summary List products
// @Tags Products
// @Produce json
// @Param category query string false "Category filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Response
// @Router /products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	products, err := h.productUsecase.List(r.Context(), category, page, pageSize)
	if err != nil {
		response.InternalServerError(w, "Failed to list products")
		return
	}

	response.Success(w, http.StatusOK, "Products retrieved successfully", products)
}

// ListLowStock returns products running low (staff only)
// @Summary List low stock products
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/products/low-stock [get]
func (h *ProductHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUsecase.ListLowStock(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list low stock products")
		return
	}

	response.Success(w, http.StatusOK, "Low stock products retrieved successfully", products)
}

// GetByID returns a single product
// @Summary Get a product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Response
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid product ID")
		return
	}

	product, err := h.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrProductNotFound:
			response.NotFound(w, "Product not found")
		default:
			response.InternalServerError(w, "Failed to get product")
		}
		return
	}

	response.Success(w, http.StatusOK, "Product retrieved successfully", product)
}

// Update modifies a product (admin only)
// @Summary Update a product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Router /admin/products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid product ID")
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	product, err := h.productUsecase.Update(r.Context(), id, actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProductNotFound:
			response.NotFound(w, "Product not found")
		default:
			response.InternalServerError(w, "Failed to update product")
		}
		return
	}

	response.Success(w, http.StatusOK, "Product updated successfully", product)
}

// Delete removes a product from the catalogue (admin only)
// @Summary Delete a product
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Response
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid product ID")
		return
	}

	if err := h.productUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrProductNotFound:
			response.NotFound(w, "Product not found")
		default:
			response.InternalServerError(w, "Failed to delete product")
		}
		return
	}

	response.Success(w, http.StatusOK, "Product deleted successfully", nil)
}
