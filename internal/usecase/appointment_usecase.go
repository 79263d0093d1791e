package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vetclinic-backend/internal/converter"
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/domain/repository"
	"vetclinic-backend/internal/scheduling"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotTaken           = errors.New("time slot is already booked")
	ErrSlotOutsideHours    = errors.New("time is outside clinic hours")
	ErrBranchNotBookable   = errors.New("branch does not offer this service")
	ErrInvalidStatus       = errors.New("invalid appointment status")
)

type AppointmentUsecase interface {
	GetAvailableSlots(ctx context.Context, branchID uuid.UUID, date string) (*dto.AvailableSlotsResponse, error)
	GetAvailableDates(ctx context.Context, branchID uuid.UUID, from, to string) (*dto.AvailableDatesResponse, error)
	Book(ctx context.Context, clientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListByVeterinarian(ctx context.Context, veterinarianID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListByBranchAndDate(ctx context.Context, branchID uuid.UUID, date string) (*dto.AppointmentListResponse, error)
	Update(ctx context.Context, id uuid.UUID, actorID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	petRepo          repository.PetRepository
	branchRepo       repository.BranchRepository
	notificationRepo repository.NotificationRepository
	auditLogRepo     repository.AuditLogRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	petRepo repository.PetRepository,
	branchRepo repository.BranchRepository,
	notificationRepo repository.NotificationRepository,
	auditLogRepo repository.AuditLogRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:               db,
		log:              log,
		appointmentRepo:  appointmentRepo,
		petRepo:          petRepo,
		branchRepo:       branchRepo,
		notificationRepo: notificationRepo,
		auditLogRepo:     auditLogRepo,
	}
}

func appointmentHolders(appointments []entity.Appointment) []scheduling.SlotHolder {
	holders := make([]scheduling.SlotHolder, 0, len(appointments))
	for i := range appointments {
		holders = append(holders, &appointments[i])
	}
	return holders
}

func (u *appointmentUsecase) GetAvailableSlots(ctx context.Context, branchID uuid.UUID, date string) (*dto.AvailableSlotsResponse, error) {
	day, err := time.Parse(scheduling.DateFormat, date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	appointments, err := u.appointmentRepo.FindByBranchAndDate(u.db.WithContext(ctx), branchID, day)
	if err != nil {
		u.log.Warnf("Failed to load appointments for slot lookup: %+v", err)
		return nil, err
	}

	slots := scheduling.AvailableSlots(appointmentHolders(appointments), date, branchID)

	return &dto.AvailableSlotsResponse{
		Date:     date,
		BranchID: branchID,
		Slots:    slots,
	}, nil
}

// GetAvailableDates returns every date in [from, to] on which the branch
// still has at least one open slot
func (u *appointmentUsecase) GetAvailableDates(ctx context.Context, branchID uuid.UUID, from, to string) (*dto.AvailableDatesResponse, error) {
	fromDay, err := time.Parse(scheduling.DateFormat, from)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	toDay, err := time.Parse(scheduling.DateFormat, to)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	appointments, err := u.appointmentRepo.FindByDateRange(u.db.WithContext(ctx), fromDay, toDay)
	if err != nil {
		u.log.Warnf("Failed to load appointments for date lookup: %+v", err)
		return nil, err
	}

	holders := appointmentHolders(appointments)
	dates := []string{}
	for day := fromDay; !day.After(toDay); day = day.AddDate(0, 0, 1) {
		date := day.Format(scheduling.DateFormat)
		if scheduling.HasAvailability(holders, date, []uuid.UUID{branchID}) {
			dates = append(dates, date)
		}
	}

	return &dto.AvailableDatesResponse{From: from, To: to, Dates: dates}, nil
}

func (u *appointmentUsecase) Book(ctx context.Context, clientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	day, err := time.Parse(scheduling.DateFormat, req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if !scheduling.InGrid(req.Time) {
		return nil, ErrSlotOutsideHours
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pet, err := u.petRepo.FindByID(tx, req.PetID)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	if pet.ClientID != clientID {
		return nil, ErrNotPetOwner
	}

	branch, err := u.branchRepo.FindByID(tx, req.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, ErrBranchNotFound
	}
	if !branch.CanBook(entity.ServiceConsultation) {
		return nil, ErrBranchNotBookable
	}

	// Re-check occupancy inside the transaction so two clients racing for
	// the same slot cannot both get it
	existing, err := u.appointmentRepo.FindByBranchAndDate(tx, req.BranchID, day)
	if err != nil {
		u.log.Warnf("Failed to check slot occupancy: %+v", err)
		return nil, err
	}
	occupied := scheduling.OccupiedTimes(appointmentHolders(existing), req.Date, req.BranchID)
	if occupied[req.Time] {
		return nil, ErrSlotTaken
	}

	appointment := &entity.Appointment{
		PetID:    req.PetID,
		ClientID: clientID,
		BranchID: req.BranchID,
		Date:     day,
		Time:     req.Time,
		Reason:   req.Reason,
		Status:   entity.AppointmentStatusPending,
		Notes:    req.Notes,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	notification := &entity.Notification{
		UserID:        clientID,
		Title:         "Appointment requested",
		Message:       fmt.Sprintf("Your appointment for %s on %s at %s is pending confirmation", pet.Name, req.Date, req.Time),
		Type:          entity.NotificationTypeAppointment,
		AppointmentID: &appointment.ID,
	}
	if err := u.notificationRepo.Create(tx, notification); err != nil {
		u.log.Warnf("Failed to create booking notification: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.audit(&clientID, entity.AuditActionAppointmentBook, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"branch_id":      req.BranchID.String(),
		"date":           req.Date,
		"time":           req.Time,
	})

	appointment.Pet = *pet
	appointment.Branch = *branch
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListByClient(ctx context.Context, clientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByClientID(u.db.WithContext(ctx), clientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments by client: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListByVeterinarian(ctx context.Context, veterinarianID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByVeterinarianID(u.db.WithContext(ctx), veterinarianID)
	if err != nil {
		u.log.Warnf("Failed to list appointments by veterinarian: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListByBranchAndDate(ctx context.Context, branchID uuid.UUID, date string) (*dto.AppointmentListResponse, error) {
	day, err := time.Parse(scheduling.DateFormat, date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	appointments, err := u.appointmentRepo.FindByBranchAndDate(u.db.WithContext(ctx), branchID, day)
	if err != nil {
		u.log.Warnf("Failed to list appointments by branch and date: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// Update applies a partial update. Fields absent from the request keep their
// current values; no transition rules are enforced between statuses.
func (u *appointmentUsecase) Update(ctx context.Context, id uuid.UUID, actorID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	patch := entity.AppointmentPatch{
		VeterinarianID: req.VeterinarianID,
		Reason:         req.Reason,
		Notes:          req.Notes,
	}

	if req.Date != nil {
		day, err := time.Parse(scheduling.DateFormat, *req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patch.Date = &day
	}
	if req.Time != nil {
		if !scheduling.InGrid(*req.Time) {
			return nil, ErrSlotOutsideHours
		}
		patch.Time = req.Time
	}
	if req.Status != nil {
		status := entity.AppointmentStatus(*req.Status)
		if !entity.ValidAppointmentStatus(status) {
			return nil, ErrInvalidStatus
		}
		patch.Status = &status
	}

	appointment.Apply(patch)

	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		if isForeignKeyError(err, "veterinarian") {
			return nil, ErrVeterinarianNotFound
		}
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	u.audit(&actorID, entity.AuditActionAppointmentUpdate, entity.JSON{
		"appointment_id": appointment.ID.String(),
	})

	return converter.AppointmentToResponse(appointment), nil
}

// Cancel marks the appointment cancelled, which frees its slot. Cancelling
// an appointment that is already cancelled removes it entirely.
func (u *appointmentUsecase) Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if appointment.IsCancelled() {
		if err := u.appointmentRepo.Delete(db, id); err != nil {
			u.log.Warnf("Failed to delete cancelled appointment: %+v", err)
			return nil, err
		}
		u.audit(&actorID, entity.AuditActionAppointmentDelete, entity.JSON{
			"appointment_id": id.String(),
		})
		return nil, nil
	}

	appointment.Status = entity.AppointmentStatusCancelled
	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return nil, err
	}

	notification := &entity.Notification{
		UserID:        appointment.ClientID,
		Title:         "Appointment cancelled",
		Message:       fmt.Sprintf("Your appointment on %s at %s has been cancelled", appointment.SlotDate(), appointment.Time),
		Type:          entity.NotificationTypeAppointment,
		AppointmentID: &appointment.ID,
	}
	if err := u.notificationRepo.Create(db, notification); err != nil {
		u.log.Warnf("Failed to create cancellation notification: %+v", err)
	}

	u.audit(&actorID, entity.AuditActionAppointmentCancel, entity.JSON{
		"appointment_id": appointment.ID.String(),
	})

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) audit(userID *uuid.UUID, action string, metadata entity.JSON) {
	entry := &entity.AuditLog{UserID: userID, Action: action, Metadata: metadata}
	if err := u.auditLogRepo.Create(u.db, entry); err != nil {
		u.log.Warnf("Failed to write audit log %s: %+v", action, err)
	}
}
