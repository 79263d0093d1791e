package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/scheduling"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB returns a gorm handle backed by sqlmock. The repositories in
// these tests are in-memory fakes, so the mock only sees transaction
// boundaries (Begin/Commit/Rollback).
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func mustParseDay(t *testing.T, date string) time.Time {
	t.Helper()
	day, err := time.Parse(scheduling.DateFormat, date)
	require.NoError(t, err)
	return day
}

// In-memory repository fakes.

type fakeAppointmentRepo struct {
	stored    []*entity.Appointment
	updateErr error
}

func (r *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	appointment.ID = uuid.New()
	stored := *appointment
	r.stored = append(r.stored, &stored)
	return nil
}

func (r *fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	for _, a := range r.stored {
		if a.ID == id {
			found := *a
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.stored {
		if a.ClientID == clientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindByVeterinarianID(db *gorm.DB, veterinarianID uuid.UUID) ([]entity.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepo) FindByBranchAndDate(db *gorm.DB, branchID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.stored {
		if a.BranchID == branchID && a.Date.Equal(date) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindByDateRange(db *gorm.DB, from, to time.Time) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.stored {
		if !a.Date.Before(from) && !a.Date.After(to) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindBlockingByDate(db *gorm.DB, date time.Time) ([]entity.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	for i, a := range r.stored {
		if a.ID == appointment.ID {
			updated := *appointment
			r.stored[i] = &updated
			return nil
		}
	}
	return nil
}

func (r *fakeAppointmentRepo) Delete(db *gorm.DB, id uuid.UUID) error {
	for i, a := range r.stored {
		if a.ID == id {
			r.stored = append(r.stored[:i], r.stored[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakePetRepo struct {
	pets map[uuid.UUID]entity.Pet
}

func (r *fakePetRepo) Create(db *gorm.DB, pet *entity.Pet) error { return nil }

func (r *fakePetRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Pet, error) {
	if pet, ok := r.pets[id]; ok {
		return &pet, nil
	}
	return nil, nil
}

func (r *fakePetRepo) FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.Pet, error) {
	return nil, nil
}

func (r *fakePetRepo) FindAll(db *gorm.DB) ([]entity.Pet, error) { return nil, nil }
func (r *fakePetRepo) Update(db *gorm.DB, pet *entity.Pet) error { return nil }
func (r *fakePetRepo) Delete(db *gorm.DB, id uuid.UUID) error    { return nil }

type fakeBranchRepo struct {
	branches map[uuid.UUID]entity.Branch
}

func (r *fakeBranchRepo) Create(db *gorm.DB, branch *entity.Branch) error { return nil }

func (r *fakeBranchRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Branch, error) {
	if branch, ok := r.branches[id]; ok {
		return &branch, nil
	}
	return nil, nil
}

func (r *fakeBranchRepo) FindAll(db *gorm.DB) ([]entity.Branch, error)    { return nil, nil }
func (r *fakeBranchRepo) FindActive(db *gorm.DB) ([]entity.Branch, error) { return nil, nil }
func (r *fakeBranchRepo) Update(db *gorm.DB, branch *entity.Branch) error { return nil }
func (r *fakeBranchRepo) Delete(db *gorm.DB, id uuid.UUID) error          { return nil }

type fakeNotificationRepo struct {
	created []entity.Notification
}

func (r *fakeNotificationRepo) Create(db *gorm.DB, notification *entity.Notification) error {
	r.created = append(r.created, *notification)
	return nil
}

func (r *fakeNotificationRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Notification, error) {
	return nil, nil
}

func (r *fakeNotificationRepo) CountUnread(db *gorm.DB, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeNotificationRepo) MarkRead(db *gorm.DB, id, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeNotificationRepo) MarkAllRead(db *gorm.DB, userID uuid.UUID) error { return nil }

type fakeAuditLogRepo struct {
	entries []entity.AuditLog
}

func (r *fakeAuditLogRepo) Create(db *gorm.DB, log *entity.AuditLog) error {
	r.entries = append(r.entries, *log)
	return nil
}

func (r *fakeAuditLogRepo) FindAll(db *gorm.DB, limit, offset int) ([]entity.AuditLog, int64, error) {
	return nil, 0, nil
}

func (r *fakeAuditLogRepo) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	return nil, nil
}

type appointmentFixture struct {
	mock          sqlmock.Sqlmock
	appointments  *fakeAppointmentRepo
	notifications *fakeNotificationRepo
	audits        *fakeAuditLogRepo
	usecase       AppointmentUsecase

	clientID uuid.UUID
	petID    uuid.UUID
	branchID uuid.UUID
}

func newAppointmentFixture(t *testing.T) *appointmentFixture {
	t.Helper()

	db, mock := newMockDB(t)

	f := &appointmentFixture{
		mock:          mock,
		appointments:  &fakeAppointmentRepo{},
		notifications: &fakeNotificationRepo{},
		audits:        &fakeAuditLogRepo{},
		clientID:      uuid.New(),
		petID:         uuid.New(),
		branchID:      uuid.New(),
	}

	pets := &fakePetRepo{pets: map[uuid.UUID]entity.Pet{
		f.petID: {ID: f.petID, ClientID: f.clientID, Name: "Milo", Species: "cat"},
	}}
	branches := &fakeBranchRepo{branches: map[uuid.UUID]entity.Branch{
		f.branchID: {
			ID:       f.branchID,
			Name:     "Central Clinic",
			IsActive: true,
			Services: entity.ServiceList{entity.ServiceConsultation, entity.ServiceSpa, entity.ServiceGrooming},
		},
	}}

	f.usecase = NewAppointmentUsecase(db, newTestLogger(), f.appointments, pets, branches, f.notifications, f.audits)
	return f
}

func (f *appointmentFixture) seedAppointment(t *testing.T, date, slot string, status entity.AppointmentStatus) uuid.UUID {
	t.Helper()
	id := uuid.New()
	f.appointments.stored = append(f.appointments.stored, &entity.Appointment{
		ID:       id,
		PetID:    f.petID,
		ClientID: f.clientID,
		BranchID: f.branchID,
		Date:     mustParseDay(t, date),
		Time:     slot,
		Reason:   "Checkup",
		Status:   status,
	})
	return id
}

func TestAppointmentBook_CreatesPendingRecordWithNotification(t *testing.T) {
	f := newAppointmentFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.usecase.Book(context.Background(), f.clientID, &dto.BookAppointmentRequest{
		PetID:    f.petID,
		BranchID: f.branchID,
		Date:     "2024-06-01",
		Time:     "09:30",
		Reason:   "Annual checkup",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.Len(t, f.appointments.stored, 1)
	stored := f.appointments.stored[0]
	assert.Equal(t, entity.AppointmentStatusPending, stored.Status)
	assert.Equal(t, f.clientID, stored.ClientID)
	assert.Equal(t, "09:30", stored.Time)
	assert.Equal(t, string(entity.AppointmentStatusPending), resp.Status)

	require.Len(t, f.notifications.created, 1)
	notification := f.notifications.created[0]
	assert.Equal(t, f.clientID, notification.UserID)
	require.NotNil(t, notification.AppointmentID)
	assert.Equal(t, stored.ID, *notification.AppointmentID)

	require.Len(t, f.audits.entries, 1)
	assert.Equal(t, entity.AuditActionAppointmentBook, f.audits.entries[0].Action)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestAppointmentBook_OccupiedSlotWritesNothing(t *testing.T) {
	f := newAppointmentFixture(t)
	f.seedAppointment(t, "2024-06-01", "10:00", entity.AppointmentStatusPending)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	resp, err := f.usecase.Book(context.Background(), f.clientID, &dto.BookAppointmentRequest{
		PetID:    f.petID,
		BranchID: f.branchID,
		Date:     "2024-06-01",
		Time:     "10:00",
		Reason:   "Checkup",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, resp)

	assert.Len(t, f.appointments.stored, 1)
	assert.Empty(t, f.notifications.created)
	assert.Empty(t, f.audits.entries)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestAppointmentBook_InvalidDateWritesNothing(t *testing.T) {
	f := newAppointmentFixture(t)

	resp, err := f.usecase.Book(context.Background(), f.clientID, &dto.BookAppointmentRequest{
		PetID:    f.petID,
		BranchID: f.branchID,
		Date:     "06/01/2024",
		Time:     "09:30",
		Reason:   "Checkup",
	})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
	assert.Nil(t, resp)

	assert.Empty(t, f.appointments.stored)
	assert.Empty(t, f.notifications.created)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestAppointmentBook_PetOwnedByAnotherClient(t *testing.T) {
	f := newAppointmentFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	resp, err := f.usecase.Book(context.Background(), uuid.New(), &dto.BookAppointmentRequest{
		PetID:    f.petID,
		BranchID: f.branchID,
		Date:     "2024-06-01",
		Time:     "09:30",
		Reason:   "Checkup",
	})
	assert.ErrorIs(t, err, ErrNotPetOwner)
	assert.Nil(t, resp)

	assert.Empty(t, f.appointments.stored)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestAppointmentCancel_SecondCancelRemovesRecord(t *testing.T) {
	f := newAppointmentFixture(t)
	id := f.seedAppointment(t, "2024-06-01", "11:00", entity.AppointmentStatusPending)

	resp, err := f.usecase.Cancel(context.Background(), id, f.clientID)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, string(entity.AppointmentStatusCancelled), resp.Status)

	require.Len(t, f.appointments.stored, 1)
	assert.Equal(t, entity.AppointmentStatusCancelled, f.appointments.stored[0].Status)
	require.Len(t, f.notifications.created, 1)
	assert.Equal(t, f.clientID, f.notifications.created[0].UserID)

	// Cancelling again removes the record entirely
	resp, err = f.usecase.Cancel(context.Background(), id, f.clientID)
	require.NoError(t, err)
	assert.Nil(t, resp)
	assert.Empty(t, f.appointments.stored)

	require.Len(t, f.audits.entries, 2)
	assert.Equal(t, entity.AuditActionAppointmentCancel, f.audits.entries[0].Action)
	assert.Equal(t, entity.AuditActionAppointmentDelete, f.audits.entries[1].Action)
}

func TestAppointmentCancel_NotFound(t *testing.T) {
	f := newAppointmentFixture(t)

	resp, err := f.usecase.Cancel(context.Background(), uuid.New(), f.clientID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Nil(t, resp)
}

func TestAppointmentUpdate_UnknownVeterinarian(t *testing.T) {
	f := newAppointmentFixture(t)
	id := f.seedAppointment(t, "2024-06-01", "11:00", entity.AppointmentStatusPending)
	f.appointments.updateErr = &pgconn.PgError{
		Code:           "23503",
		ConstraintName: "appointments_veterinarian_id_fkey",
	}

	vetID := uuid.New()
	resp, err := f.usecase.Update(context.Background(), id, f.clientID, &dto.UpdateAppointmentRequest{
		VeterinarianID: &vetID,
	})
	assert.ErrorIs(t, err, ErrVeterinarianNotFound)
	assert.Nil(t, resp)
}
