package usecase

import (
	"context"
	"testing"
	"time"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSpaGroomingRepo struct {
	stored []*entity.SpaGroomingAppointment
}

func (r *fakeSpaGroomingRepo) Create(db *gorm.DB, appointment *entity.SpaGroomingAppointment) error {
	appointment.ID = uuid.New()
	stored := *appointment
	r.stored = append(r.stored, &stored)
	return nil
}

func (r *fakeSpaGroomingRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.SpaGroomingAppointment, error) {
	for _, a := range r.stored {
		if a.ID == id {
			found := *a
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeSpaGroomingRepo) FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.SpaGroomingAppointment, error) {
	return nil, nil
}

func (r *fakeSpaGroomingRepo) FindByBranchAndDate(db *gorm.DB, branchID uuid.UUID, date time.Time) ([]entity.SpaGroomingAppointment, error) {
	var out []entity.SpaGroomingAppointment
	for _, a := range r.stored {
		if a.BranchID == branchID && a.Date.Equal(date) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeSpaGroomingRepo) FindByDateRange(db *gorm.DB, from, to time.Time) ([]entity.SpaGroomingAppointment, error) {
	return nil, nil
}

func (r *fakeSpaGroomingRepo) Update(db *gorm.DB, appointment *entity.SpaGroomingAppointment) error {
	for i, a := range r.stored {
		if a.ID == appointment.ID {
			updated := *appointment
			r.stored[i] = &updated
			return nil
		}
	}
	return nil
}

func (r *fakeSpaGroomingRepo) Delete(db *gorm.DB, id uuid.UUID) error {
	for i, a := range r.stored {
		if a.ID == id {
			r.stored = append(r.stored[:i], r.stored[i+1:]...)
			return nil
		}
	}
	return nil
}

type spaFixture struct {
	mock          sqlmock.Sqlmock
	spa           *fakeSpaGroomingRepo
	notifications *fakeNotificationRepo
	usecase       SpaGroomingUsecase

	clientID uuid.UUID
	petID    uuid.UUID
	branchID uuid.UUID
	spaOnly  uuid.UUID
}

func newSpaFixture(t *testing.T) *spaFixture {
	t.Helper()

	db, mock := newMockDB(t)

	f := &spaFixture{
		mock:          mock,
		spa:           &fakeSpaGroomingRepo{},
		notifications: &fakeNotificationRepo{},
		clientID:      uuid.New(),
		petID:         uuid.New(),
		branchID:      uuid.New(),
		spaOnly:       uuid.New(),
	}

	pets := &fakePetRepo{pets: map[uuid.UUID]entity.Pet{
		f.petID: {ID: f.petID, ClientID: f.clientID, Name: "Luna", Species: "dog"},
	}}
	branches := &fakeBranchRepo{branches: map[uuid.UUID]entity.Branch{
		f.branchID: {
			ID:       f.branchID,
			Name:     "Central Clinic",
			IsActive: true,
			Services: entity.ServiceList{entity.ServiceConsultation, entity.ServiceSpa, entity.ServiceGrooming},
		},
		f.spaOnly: {
			ID:       f.spaOnly,
			Name:     "Spa Annex",
			IsActive: true,
			Services: entity.ServiceList{entity.ServiceSpa},
		},
	}}

	f.usecase = NewSpaGroomingUsecase(db, newTestLogger(), f.spa, pets, branches, f.notifications, &fakeAuditLogRepo{})
	return f
}

func TestSpaGroomingBook_InvalidServiceType(t *testing.T) {
	f := newSpaFixture(t)

	resp, err := f.usecase.Book(context.Background(), f.clientID, &dto.BookSpaGroomingRequest{
		PetID:       f.petID,
		BranchID:    f.branchID,
		ServiceType: "massage",
		Date:        "2024-06-01",
		Time:        "09:30",
	})
	assert.ErrorIs(t, err, ErrInvalidServiceType)
	assert.Nil(t, resp)

	assert.Empty(t, f.spa.stored)
	assert.Empty(t, f.notifications.created)
}

func TestSpaGroomingBook_BranchWithoutService(t *testing.T) {
	f := newSpaFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	// The annex offers spa sessions only
	resp, err := f.usecase.Book(context.Background(), f.clientID, &dto.BookSpaGroomingRequest{
		PetID:       f.petID,
		BranchID:    f.spaOnly,
		ServiceType: "grooming",
		Date:        "2024-06-01",
		Time:        "09:30",
	})
	assert.ErrorIs(t, err, ErrBranchNotBookable)
	assert.Nil(t, resp)

	assert.Empty(t, f.spa.stored)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestSpaGroomingUpdate_InvalidServiceType(t *testing.T) {
	f := newSpaFixture(t)
	id := uuid.New()
	f.spa.stored = append(f.spa.stored, &entity.SpaGroomingAppointment{
		ID:          id,
		PetID:       f.petID,
		ClientID:    f.clientID,
		BranchID:    f.branchID,
		ServiceType: entity.SpaServiceSpa,
		Date:        mustParseDay(t, "2024-06-01"),
		Time:        "09:30",
		Status:      entity.AppointmentStatusPending,
	})

	serviceType := "massage"
	resp, err := f.usecase.Update(context.Background(), id, f.clientID, &dto.UpdateSpaGroomingRequest{
		ServiceType: &serviceType,
	})
	assert.ErrorIs(t, err, ErrInvalidServiceType)
	assert.Nil(t, resp)

	require.Len(t, f.spa.stored, 1)
	assert.Equal(t, entity.SpaServiceSpa, f.spa.stored[0].ServiceType)
}
