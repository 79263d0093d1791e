package handler

import (
	"encoding/json"
	"net/http"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/delivery/http/middleware"
	"vetclinic-backend/internal/usecase"
	"vetclinic-backend/pkg/response"
	"vetclinic-backend/pkg/validator"
)

type PermissionHandler struct {
	permissionUsecase usecase.PermissionUsecase
	validator         *validator.CustomValidator
}

func NewPermissionHandler(permissionUsecase usecase.PermissionUsecase, validator *validator.CustomValidator) *PermissionHandler {
	return &PermissionHandler{
		permissionUsecase: permissionUsecase,
		validator:         validator,
	}
}

// GetMatrix returns the full role/resource/action permission matrix
// @Summary Get the permission matrix
// @Tags Permissions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/permissions [get]
func (h *PermissionHandler) GetMatrix(w http.ResponseWriter, r *http.Request) {
	matrix, err := h.permissionUsecase.GetMatrix(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get permissions")
		return
	}

	response.Success(w, http.StatusOK, "Permissions retrieved successfully", matrix)
}

// SetPermission toggles one cell of the matrix (admin only)
// @Summary Set a permission
// @Tags Permissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SetPermissionRequest true "Permission"
// @Success 200 {object} response.Response
// @Router /admin/permissions [put]
func (h *PermissionHandler) SetPermission(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SetPermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	matrix, err := h.permissionUsecase.SetPermission(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrUnknownRole:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to set permission")
		}
		return
	}

	response.Success(w, http.StatusOK, "Permission updated successfully", matrix)
}
