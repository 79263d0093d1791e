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

type SpaGroomingHandler struct {
	spaUsecase usecase.SpaGroomingUsecase
	validator  *validator.CustomValidator
}

func NewSpaGroomingHandler(spaUsecase usecase.SpaGroomingUsecase, validator *validator.CustomValidator) *SpaGroomingHandler {
	return &SpaGroomingHandler{
		spaUsecase: spaUsecase,
		validator:  validator,
	}
}

// GetAvailableSlots lists open spa/grooming slots for a branch on a date
// @Summary Get available spa slots
// @Tags SpaGrooming
// @Security BearerAuth
// @Produce json
// @Param branchId query string true "Branch ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /spa-grooming/available-slots [get]
func (h *SpaGroomingHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	branchID, err := uuid.Parse(r.URL.Query().Get("branchId"))
	if err != nil {
		response.BadRequest(w, "Invalid branch ID")
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date is required")
		return
	}

	slots, err := h.spaUsecase.GetAvailableSlots(r.Context(), branchID, date)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get available slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}

// Book creates a spa or grooming booking for the authenticated client
// @Summary Book a spa/grooming session
// @Tags SpaGrooming
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BookSpaGroomingRequest true "Booking"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /spa-grooming [post]
func (h *SpaGroomingHandler) Book(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.BookSpaGroomingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.spaUsecase.Book(r.Context(), clientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrSlotOutsideHours, usecase.ErrBranchNotBookable, usecase.ErrInvalidServiceType:
			response.BadRequest(w, err.Error())
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrNotPetOwner:
			response.Forbidden(w, "Pet does not belong to this client")
		case usecase.ErrBranchNotFound:
			response.NotFound(w, "Branch not found")
		case usecase.ErrSlotTaken:
			response.Conflict(w, "Time slot is already booked")
		default:
			response.InternalServerError(w, "Failed to book spa session")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Spa session booked successfully", booking)
}

// ListMine returns the authenticated client's spa/grooming bookings
// @Summary List my spa bookings
// @Tags SpaGrooming
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /spa-grooming/mine [get]
func (h *SpaGroomingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bookings, err := h.spaUsecase.ListByClient(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list spa bookings")
		return
	}

	response.Success(w, http.StatusOK, "Spa bookings retrieved successfully", bookings)
}

// ListByBranchAndDate returns a branch's spa book for one day (staff)
// @Summary List spa bookings by branch and date
// @Tags SpaGrooming
// @Security BearerAuth
// @Produce json
// @Param branchId query string true "Branch ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /spa-grooming [get]
func (h *SpaGroomingHandler) ListByBranchAndDate(w http.ResponseWriter, r *http.Request) {
	branchID, err := uuid.Parse(r.URL.Query().Get("branchId"))
	if err != nil {
		response.BadRequest(w, "Invalid branch ID")
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date is required")
		return
	}

	bookings, err := h.spaUsecase.ListByBranchAndDate(r.Context(), branchID, date)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to list spa bookings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Spa bookings retrieved successfully", bookings)
}

// Update applies a partial update to a spa booking (staff only)
// @Summary Update a spa booking
// @Tags SpaGrooming
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateSpaGroomingRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Router /spa-grooming/{id} [patch]
func (h *SpaGroomingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateSpaGroomingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.spaUsecase.Update(r.Context(), id, actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrSpaAppointmentNotFound:
			response.NotFound(w, "Spa booking not found")
		case usecase.ErrInvalidDateFormat, usecase.ErrSlotOutsideHours, usecase.ErrInvalidStatus, usecase.ErrInvalidServiceType:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update spa booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Spa booking updated successfully", booking)
}

// Cancel cancels a spa booking; a second cancel removes the record
// @Summary Cancel a spa booking
// @Tags SpaGrooming
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Router /spa-grooming/{id}/cancel [post]
func (h *SpaGroomingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	roleID, _ := middleware.GetRoleIDFromContext(r.Context())
	if roleID == entity.RoleIDClient {
		existing, err := h.spaUsecase.GetByID(r.Context(), id)
		if err != nil {
			response.NotFound(w, "Spa booking not found")
			return
		}
		if existing.ClientID != actorID {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}
	}

	booking, err := h.spaUsecase.Cancel(r.Context(), id, actorID)
	if err != nil {
		switch err {
		case usecase.ErrSpaAppointmentNotFound:
			response.NotFound(w, "Spa booking not found")
		default:
			response.InternalServerError(w, "Failed to cancel spa booking")
		}
		return
	}

	if booking == nil {
		response.Success(w, http.StatusOK, "Spa booking removed", nil)
		return
	}

	response.Success(w, http.StatusOK, "Spa booking cancelled successfully", booking)
}
