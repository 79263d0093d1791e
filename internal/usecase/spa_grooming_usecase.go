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
	ErrSpaAppointmentNotFound = errors.New("spa/grooming appointment not found")
	ErrInvalidServiceType     = errors.New("invalid service type")
)

type SpaGroomingUsecase interface {
	GetAvailableSlots(ctx context.Context, branchID uuid.UUID, date string) (*dto.AvailableSlotsResponse, error)
	Book(ctx context.Context, clientID uuid.UUID, req *dto.BookSpaGroomingRequest) (*dto.SpaGroomingResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SpaGroomingResponse, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) (*dto.SpaGroomingListResponse, error)
	ListByBranchAndDate(ctx context.Context, branchID uuid.UUID, date string) (*dto.SpaGroomingListResponse, error)
	Update(ctx context.Context, id uuid.UUID, actorID uuid.UUID, req *dto.UpdateSpaGroomingRequest) (*dto.SpaGroomingResponse, error)
	Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*dto.SpaGroomingResponse, error)
}

type spaGroomingUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	spaRepo          repository.SpaGroomingRepository
	petRepo          repository.PetRepository
	branchRepo       repository.BranchRepository
	notificationRepo repository.NotificationRepository
	auditLogRepo     repository.AuditLogRepository
}

func NewSpaGroomingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	spaRepo repository.SpaGroomingRepository,
	petRepo repository.PetRepository,
	branchRepo repository.BranchRepository,
	notificationRepo repository.NotificationRepository,
	auditLogRepo repository.AuditLogRepository,
) SpaGroomingUsecase {
	return &spaGroomingUsecase{
		db:               db,
		log:              log,
		spaRepo:          spaRepo,
		petRepo:          petRepo,
		branchRepo:       branchRepo,
		notificationRepo: notificationRepo,
		auditLogRepo:     auditLogRepo,
	}
}

func spaHolders(appointments []entity.SpaGroomingAppointment) []scheduling.SlotHolder {
	holders := make([]scheduling.SlotHolder, 0, len(appointments))
	for i := range appointments {
		holders = append(holders, &appointments[i])
	}
	return holders
}

// GetAvailableSlots returns open spa/grooming slots for the branch on the
// given date. Spa bookings occupy their own grid, independent from clinic
// consultations.
func (u *spaGroomingUsecase) GetAvailableSlots(ctx context.Context, branchID uuid.UUID, date string) (*dto.AvailableSlotsResponse, error) {
	day, err := time.Parse(scheduling.DateFormat, date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	appointments, err := u.spaRepo.FindByBranchAndDate(u.db.WithContext(ctx), branchID, day)
	if err != nil {
		u.log.Warnf("Failed to load spa appointments for slot lookup: %+v", err)
		return nil, err
	}

	slots := scheduling.AvailableSlots(spaHolders(appointments), date, branchID)

	return &dto.AvailableSlotsResponse{
		Date:     date,
		BranchID: branchID,
		Slots:    slots,
	}, nil
}

func (u *spaGroomingUsecase) Book(ctx context.Context, clientID uuid.UUID, req *dto.BookSpaGroomingRequest) (*dto.SpaGroomingResponse, error) {
	day, err := time.Parse(scheduling.DateFormat, req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if !scheduling.InGrid(req.Time) {
		return nil, ErrSlotOutsideHours
	}

	serviceType := entity.SpaServiceType(req.ServiceType)
	if !entity.ValidSpaServiceType(serviceType) {
		return nil, ErrInvalidServiceType
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
	if !branch.CanBook(serviceType.BranchService()) {
		return nil, ErrBranchNotBookable
	}

	existing, err := u.spaRepo.FindByBranchAndDate(tx, req.BranchID, day)
	if err != nil {
		u.log.Warnf("Failed to check spa slot occupancy: %+v", err)
		return nil, err
	}
	occupied := scheduling.OccupiedTimes(spaHolders(existing), req.Date, req.BranchID)
	if occupied[req.Time] {
		return nil, ErrSlotTaken
	}

	appointment := &entity.SpaGroomingAppointment{
		PetID:       req.PetID,
		ClientID:    clientID,
		BranchID:    req.BranchID,
		ServiceType: serviceType,
		Date:        day,
		Time:        req.Time,
		Status:      entity.AppointmentStatusPending,
		Notes:       req.Notes,
	}

	if err := u.spaRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create spa appointment: %+v", err)
		return nil, err
	}

	notification := &entity.Notification{
		UserID:  clientID,
		Title:   "Spa & grooming booking received",
		Message: fmt.Sprintf("Your %s session for %s on %s at %s is pending confirmation", req.ServiceType, pet.Name, req.Date, req.Time),
		Type:    entity.NotificationTypeAppointment,
	}
	if err := u.notificationRepo.Create(tx, notification); err != nil {
		u.log.Warnf("Failed to create spa booking notification: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.audit(&clientID, entity.AuditActionSpaBook, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"service_type":   req.ServiceType,
		"branch_id":      req.BranchID.String(),
		"date":           req.Date,
		"time":           req.Time,
	})

	appointment.Pet = *pet
	appointment.Branch = *branch
	return converter.SpaGroomingToResponse(appointment), nil
}

func (u *spaGroomingUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.SpaGroomingResponse, error) {
	appointment, err := u.spaRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find spa appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrSpaAppointmentNotFound
	}

	return converter.SpaGroomingToResponse(appointment), nil
}

func (u *spaGroomingUsecase) ListByClient(ctx context.Context, clientID uuid.UUID) (*dto.SpaGroomingListResponse, error) {
	appointments, err := u.spaRepo.FindByClientID(u.db.WithContext(ctx), clientID)
	if err != nil {
		u.log.Warnf("Failed to list spa appointments by client: %+v", err)
		return nil, err
	}

	return &dto.SpaGroomingListResponse{
		Appointments: converter.SpaGroomingsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *spaGroomingUsecase) ListByBranchAndDate(ctx context.Context, branchID uuid.UUID, date string) (*dto.SpaGroomingListResponse, error) {
	day, err := time.Parse(scheduling.DateFormat, date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	appointments, err := u.spaRepo.FindByBranchAndDate(u.db.WithContext(ctx), branchID, day)
	if err != nil {
		u.log.Warnf("Failed to list spa appointments by branch and date: %+v", err)
		return nil, err
	}

	return &dto.SpaGroomingListResponse{
		Appointments: converter.SpaGroomingsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *spaGroomingUsecase) Update(ctx context.Context, id uuid.UUID, actorID uuid.UUID, req *dto.UpdateSpaGroomingRequest) (*dto.SpaGroomingResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.spaRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find spa appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrSpaAppointmentNotFound
	}

	patch := entity.SpaGroomingPatch{
		Notes: req.Notes,
	}

	if req.ServiceType != nil {
		serviceType := entity.SpaServiceType(*req.ServiceType)
		if !entity.ValidSpaServiceType(serviceType) {
			return nil, ErrInvalidServiceType
		}
		patch.ServiceType = &serviceType
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

	if err := u.spaRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to update spa appointment: %+v", err)
		return nil, err
	}

	return converter.SpaGroomingToResponse(appointment), nil
}

// Cancel mirrors the clinic appointment rule: a second cancel removes the
// record entirely
func (u *spaGroomingUsecase) Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*dto.SpaGroomingResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.spaRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find spa appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrSpaAppointmentNotFound
	}

	if appointment.IsCancelled() {
		if err := u.spaRepo.Delete(db, id); err != nil {
			u.log.Warnf("Failed to delete cancelled spa appointment: %+v", err)
			return nil, err
		}
		u.audit(&actorID, entity.AuditActionSpaCancel, entity.JSON{
			"appointment_id": id.String(),
			"deleted":        true,
		})
		return nil, nil
	}

	appointment.Status = entity.AppointmentStatusCancelled
	if err := u.spaRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to cancel spa appointment: %+v", err)
		return nil, err
	}

	u.audit(&actorID, entity.AuditActionSpaCancel, entity.JSON{
		"appointment_id": appointment.ID.String(),
	})

	return converter.SpaGroomingToResponse(appointment), nil
}

func (u *spaGroomingUsecase) audit(userID *uuid.UUID, action string, metadata entity.JSON) {
	entry := &entity.AuditLog{UserID: userID, Action: action, Metadata: metadata}
	if err := u.auditLogRepo.Create(u.db, entry); err != nil {
		u.log.Warnf("Failed to write audit log %s: %+v", action, err)
	}
}
