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

type PetHandler struct {
	petUsecase usecase.PetUsecase
	validator  *validator.CustomValidator
}

func NewPetHandler(petUsecase usecase.PetUsecase, validator *validator.CustomValidator) *PetHandler {
	return &PetHandler{
		petUsecase: petUsecase,
		validator:  validator,
	}
}

// Create registers a new pet. Clients can only register pets under their own
// profile; staff may register for any client.
// @Summary Register a pet
// @Tags Pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePetRequest true "Pet"
// @Success 201 {object} response.Response
// @Router /pets [post]
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	roleID, _ := middleware.GetRoleIDFromContext(r.Context())
	if roleID == entity.RoleIDClient {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Invalid token")
			return
		}
		req.ClientID = userID
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pet, err := h.petUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to register pet")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Pet registered successfully", pet)
}

// GetByID returns a single pet. Clients may only see their own pets.
// @Summary Get a pet
// @Tags Pets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} response.Response
// @Router /pets/{id} [get]
func (h *PetHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid pet ID")
		return
	}

	pet, err := h.petUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to get pet")
		}
		return
	}

	roleID, _ := middleware.GetRoleIDFromContext(r.Context())
	if roleID == entity.RoleIDClient {
		userID, _ := middleware.GetUserIDFromContext(r.Context())
		if pet.ClientID != userID {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}
	}

	response.Success(w, http.StatusOK, "Pet retrieved successfully", pet)
}

// ListMine returns the authenticated client's pets
// @Summary List my pets
// @Tags Pets
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /pets/mine [get]
func (h *PetHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	pets, err := h.petUsecase.ListByClient(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list pets")
		return
	}

	response.Success(w, http.StatusOK, "Pets retrieved successfully", pets)
}

// ListAll returns every registered pet (staff only)
// @Summary List all pets
// @Tags Pets
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /pets [get]
func (h *PetHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	pets, err := h.petUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list pets")
		return
	}

	response.Success(w, http.StatusOK, "Pets retrieved successfully", pets)
}

// ListByClient returns the pets of a specific client (staff only)
// @Summary List a client's pets
// @Tags Pets
// @Security BearerAuth
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {object} response.Response
// @Router /clients/{clientId}/pets [get]
func (h *PetHandler) ListByClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(mux.Vars(r)["clientId"])
	if err != nil {
		response.BadRequest(w, "Invalid client ID")
		return
	}

	pets, err := h.petUsecase.ListByClient(r.Context(), clientID)
	if err != nil {
		response.InternalServerError(w, "Failed to list pets")
		return
	}

	response.Success(w, http.StatusOK, "Pets retrieved successfully", pets)
}

// Update modifies a pet record
// @Summary Update a pet
// @Tags Pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Pet ID"
// @Param request body dto.UpdatePetRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Router /pets/{id} [put]
func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid pet ID")
		return
	}

	var req dto.UpdatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	roleID, _ := middleware.GetRoleIDFromContext(r.Context())
	if roleID == entity.RoleIDClient {
		userID, _ := middleware.GetUserIDFromContext(r.Context())
		existing, err := h.petUsecase.GetByID(r.Context(), id)
		if err != nil {
			response.NotFound(w, "Pet not found")
			return
		}
		if existing.ClientID != userID {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}
	}

	pet, err := h.petUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update pet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet updated successfully", pet)
}

// Delete removes a pet record (staff only)
// @Summary Delete a pet
// @Tags Pets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} response.Response
// @Router /pets/{id} [delete]
func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid pet ID")
		return
	}

	if err := h.petUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to delete pet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet deleted successfully", nil)
}
