package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/delivery/http/middleware"
	"vetclinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubAppointmentUsecase struct {
	bookCalls int
	bookResp  *dto.AppointmentResponse
	bookErr   error
}

func (s *stubAppointmentUsecase) GetAvailableSlots(ctx context.Context, branchID uuid.UUID, date string) (*dto.AvailableSlotsResponse, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) GetAvailableDates(ctx context.Context, branchID uuid.UUID, from, to string) (*dto.AvailableDatesResponse, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) Book(ctx context.Context, clientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	s.bookCalls++
	return s.bookResp, s.bookErr
}

func (s *stubAppointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) ListByClient(ctx context.Context, clientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) ListByVeterinarian(ctx context.Context, veterinarianID uuid.UUID) (*dto.AppointmentListResponse, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) ListByBranchAndDate(ctx context.Context, branchID uuid.UUID, date string) (*dto.AppointmentListResponse, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) Update(ctx context.Context, id uuid.UUID, actorID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*dto.AppointmentResponse, error) {
	return nil, nil
}

func TestAppointmentHandlerBook_MissingFieldsRejected(t *testing.T) {
	stub := &stubAppointmentUsecase{}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	// pet_id, time and reason are all absent
	body := fmt.Sprintf(`{"branch_id":%q,"date":"2024-06-01"}`, uuid.New().String())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, uuid.New()))
	rec := httptest.NewRecorder()

	h.Book(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
	assert.Zero(t, stub.bookCalls, "usecase must not be reached on a failed validation")
}

func TestAppointmentHandlerBook_InvalidBody(t *testing.T) {
	stub := &stubAppointmentUsecase{}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader("{not json"))
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, uuid.New()))
	rec := httptest.NewRecorder()

	h.Book(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, stub.bookCalls)
}
