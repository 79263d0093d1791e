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

type ClientHandler struct {
	clientUsecase usecase.ClientUsecase
	validator     *validator.CustomValidator
}

func NewClientHandler(clientUsecase usecase.ClientUsecase, validator *validator.CustomValidator) *ClientHandler {
	return &ClientHandler{
		clientUsecase: clientUsecase,
		validator:     validator,
	}
}

// ListAll returns all client profiles (staff only)
// @Summary List clients
// @Tags Clients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /clients [get]
func (h *ClientHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list clients")
		return
	}

	response.Success(w, http.StatusOK, "Clients retrieved successfully", clients)
}

// GetByID returns a single client profile with their pets
// @Summary Get a client
// @Tags Clients
// @Security BearerAuth
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} response.Response
// @Router /clients/{id} [get]
func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid client ID")
		return
	}

	client, err := h.clientUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		default:
			response.InternalServerError(w, "Failed to get client")
		}
		return
	}

	response.Success(w, http.StatusOK, "Client retrieved successfully", client)
}

// GetMyProfile returns the authenticated client's own profile
// @Summary Get my profile
// @Tags Clients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /clients/me [get]
func (h *ClientHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	client, err := h.clientUsecase.GetByID(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", client)
}

// UpdateMyProfile updates the authenticated client's own profile
// @Summary Update my profile
// @Tags Clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateClientRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Router /clients/me [put]
func (h *ClientHandler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	client, err := h.clientUsecase.Update(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", client)
}
