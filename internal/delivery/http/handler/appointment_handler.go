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

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// GetAvailableSlots lists the open time slots for a branch on a date
// @Summary Get available slots
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param branchId query string true "Branch ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /appointments/available-slots [get]
func (h *AppointmentHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
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

	slots, err := h.appointmentUsecase.GetAvailableSlots(r.Context(), branchID, date)
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

// GetAvailableDates lists dates in a range that still have open slots
// @Summary Get available dates
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param branchId query string true "Branch ID"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /appointments/available-dates [get]
func (h *AppointmentHandler) GetAvailableDates(w http.ResponseWriter, r *http.Request) {
	branchID, err := uuid.Parse(r.URL.Query().Get("branchId"))
	if err != nil {
		response.BadRequest(w, "Invalid branch ID")
		return
	}
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.BadRequest(w, "from and to are required")
		return
	}

	dates, err := h.appointmentUsecase.GetAvailableDates(r.Context(), branchID, from, to)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get available dates")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available dates retrieved successfully", dates)
}

// Book creates a consultation appointment for the authenticated client
// @Summary Book an appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Booking"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Book(r.Context(), clientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrSlotOutsideHours:
			response.BadRequest(w, err.Error())
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrNotPetOwner:
			response.Forbidden(w, "Pet does not belong to this client")
		case usecase.ErrBranchNotFound:
			response.NotFound(w, "Branch not found")
		case usecase.ErrBranchNotBookable:
			response.BadRequest(w, err.Error())
		case usecase.ErrSlotTaken:
			response.Conflict(w, "Time slot is already booked")
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// GetByID returns a single appointment
// @Summary Get an appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	roleID, _ := middleware.GetRoleIDFromContext(r.Context())
	if roleID == entity.RoleIDClient {
		userID, _ := middleware.GetUserIDFromContext(r.Context())
		if appointment.ClientID != userID {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// ListMine returns the authenticated client's appointments
// @Summary List my appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /appointments/mine [get]
func (h *AppointmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.ListByClient(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// ListMySchedule returns appointments assigned to the authenticated veterinarian
// @Summary List my schedule
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /appointments/schedule [get]
func (h *AppointmentHandler) ListMySchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.ListByVeterinarian(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// ListByBranchAndDate returns a branch's appointment book for one day (staff)
// @Summary List appointments by branch and date
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param branchId query string true "Branch ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) ListByBranchAndDate(w http.ResponseWriter, r *http.Request) {
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

	appointments, err := h.appointmentUsecase.ListByBranchAndDate(r.Context(), branchID, date)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to list appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// Update applies a partial update to an appointment (staff only)
// @Summary Update an appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateAppointmentRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Router /appointments/{id} [patch]
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), id, actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrVeterinarianNotFound:
			response.NotFound(w, "Veterinarian not found")
		case usecase.ErrInvalidDateFormat, usecase.ErrSlotOutsideHours, usecase.ErrInvalidStatus:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

// Cancel cancels an appointment, freeing its slot. Cancelling a second time
// removes the record.
// @Summary Cancel an appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	roleID, _ := middleware.GetRoleIDFromContext(r.Context())
	if roleID == entity.RoleIDClient {
		existing, err := h.appointmentUsecase.GetByID(r.Context(), id)
		if err != nil {
			response.NotFound(w, "Appointment not found")
			return
		}
		if existing.ClientID != actorID {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}
	}

	appointment, err := h.appointmentUsecase.Cancel(r.Context(), id, actorID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	if appointment == nil {
		response.Success(w, http.StatusOK, "Appointment removed", nil)
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}
