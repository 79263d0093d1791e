package handler

import (
	"encoding/json"
	"net/http"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/usecase"
	"vetclinic-backend/pkg/response"
	"vetclinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type VeterinarianHandler struct {
	vetUsecase usecase.VeterinarianUsecase
	validator  *validator.CustomValidator
}

func NewVeterinarianHandler(vetUsecase usecase.VeterinarianUsecase, validator *validator.CustomValidator) *VeterinarianHandler {
	return &VeterinarianHandler{
		vetUsecase: vetUsecase,
		validator:  validator,
	}
}

// Create registers a new veterinarian account (admin only)
// @Summary Create a veterinarian
// @Tags Veterinarians
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateVeterinarianRequest true "Veterinarian"
// @Success 201 {object} response.Response
// @Router /admin/veterinarians [post]
func (h *VeterinarianHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVeterinarianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vet, err := h.vetUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already exists")
		case usecase.ErrLicenseAlreadyExists:
			response.Conflict(w, "License number already exists")
		case usecase.ErrVetBranchNotFound:
			response.NotFound(w, "Branch not found")
		default:
			response.InternalServerError(w, "Failed to create veterinarian")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Veterinarian created successfully", vet)
}

// ListAll returns all veterinarians
// @Summary List veterinarians
// @Tags Veterinarians
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /veterinarians [get]
func (h *VeterinarianHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	vets, err := h.vetUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list veterinarians")
		return
	}

	response.Success(w, http.StatusOK, "Veterinarians retrieved successfully", vets)
}

// ListByBranch returns veterinarians assigned to a branch
// @Summary List veterinarians by branch
// @Tags Veterinarians
// @Security BearerAuth
// @Produce json
// @Param branchId path string true "Branch ID"
// @Success 200 {object} response.Response
// @Router /branches/{branchId}/veterinarians [get]
func (h *VeterinarianHandler) ListByBranch(w http.ResponseWriter, r *http.Request) {
	branchID, err := uuid.Parse(mux.Vars(r)["branchId"])
	if err != nil {
		response.BadRequest(w, "Invalid branch ID")
		return
	}

	vets, err := h.vetUsecase.ListByBranch(r.Context(), branchID)
	if err != nil {
		response.InternalServerError(w, "Failed to list veterinarians")
		return
	}

	response.Success(w, http.StatusOK, "Veterinarians retrieved successfully", vets)
}

// GetByID returns a single veterinarian
// @Summary Get a veterinarian
// @Tags Veterinarians
// @Security BearerAuth
// @Produce json
// @Param id path string true "Veterinarian ID"
// @Success 200 {object} response.Response
// @Router /veterinarians/{id} [get]
func (h *VeterinarianHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid veterinarian ID")
		return
	}

	vet, err := h.vetUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrVeterinarianNotFound:
			response.NotFound(w, "Veterinarian not found")
		default:
			response.InternalServerError(w, "Failed to get veterinarian")
		}
		return
	}

	response.Success(w, http.StatusOK, "Veterinarian retrieved successfully", vet)
}

// Update modifies a veterinarian account (admin only)
// @Summary Update a veterinarian
// @Tags Veterinarians
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Veterinarian ID"
// @Param request body dto.UpdateVeterinarianRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Router /admin/veterinarians/{id} [put]
func (h *VeterinarianHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid veterinarian ID")
		return
	}

	var req dto.UpdateVeterinarianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vet, err := h.vetUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrVeterinarianNotFound:
			response.NotFound(w, "Veterinarian not found")
		case usecase.ErrVetBranchNotFound:
			response.NotFound(w, "Branch not found")
		default:
			response.InternalServerError(w, "Failed to update veterinarian")
		}
		return
	}

	response.Success(w, http.StatusOK, "Veterinarian updated successfully", vet)
}
