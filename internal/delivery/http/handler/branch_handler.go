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

type BranchHandler struct {
	branchUsecase usecase.BranchUsecase
	validator     *validator.CustomValidator
}

func NewBranchHandler(branchUsecase usecase.BranchUsecase, validator *validator.CustomValidator) *BranchHandler {
	return &BranchHandler{
		branchUsecase: branchUsecase,
		validator:     validator,
	}
}

// Create adds a new clinic branch (admin only)
// @Summary Create a branch
// @Tags Branches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBranchRequest true "Branch"
// @Success 201 {object} response.Response
// @Router /admin/branches [post]
func (h *BranchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	branch, err := h.branchUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create branch")
		return
	}

	response.Success(w, http.StatusCreated, "Branch created successfully", branch)
}

// ListActive returns the branches open for booking
// @Summary List active branches
// @Tags Branches
// @Produce json
// @Success 200 {object} response.Response
// @Router /branches [get]
func (h *BranchHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	branches, err := h.branchUsecase.ListActive(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list branches")
		return
	}

	response.Success(w, http.StatusOK, "Branches retrieved successfully", branches)
}

// ListAll returns every branch including inactive ones (staff only)
// @Summary List all branches
// @Tags Branches
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/branches [get]
func (h *BranchHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	branches, err := h.branchUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list branches")
		return
	}

	response.Success(w, http.StatusOK, "Branches retrieved successfully", branches)
}

// GetByID returns a single branch
// @Summary Get a branch
// @Tags Branches
// @Produce json
// @Param id path string true "Branch ID"
// @Success 200 {object} response.Response
// @Router /branches/{id} [get]
func (h *BranchHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid branch ID")
		return
	}

	branch, err := h.branchUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrBranchNotFound:
			response.NotFound(w, "Branch not found")
		default:
			response.InternalServerError(w, "Failed to get branch")
		}
		return
	}

	response.Success(w, http.StatusOK, "Branch retrieved successfully", branch)
}

// Update modifies a branch (admin only)
// @Summary Update a branch
// @Tags Branches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Branch ID"
// @Param request body dto.UpdateBranchRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Router /admin/branches/{id} [put]
func (h *BranchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid branch ID")
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	branch, err := h.branchUsecase.Update(r.Context(), id, actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBranchNotFound:
			response.NotFound(w, "Branch not found")
		default:
			response.InternalServerError(w, "Failed to update branch")
		}
		return
	}

	response.Success(w, http.StatusOK, "Branch updated successfully", branch)
}

// Delete removes a branch (admin only)
// @Summary Delete a branch
// @Tags Branches
// @Security BearerAuth
// @Produce json
// @Param id path string true "Branch ID"
// @Success 200 {object} response.Response
// @Router /admin/branches/{id} [delete]
func (h *BranchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid branch ID")
		return
	}

	if err := h.branchUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrBranchNotFound:
			response.NotFound(w, "Branch not found")
		default:
			response.InternalServerError(w, "Failed to delete branch")
		}
		return
	}

	response.Success(w, http.StatusOK, "Branch deleted successfully", nil)
}
