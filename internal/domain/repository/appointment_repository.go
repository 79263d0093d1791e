package repository

import (
	"time"

	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.Appointment, error)
	FindByVeterinarianID(db *gorm.DB, veterinarianID uuid.UUID) ([]entity.Appointment, error)
	FindByBranchAndDate(db *gorm.DB, branchID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	FindByDateRange(db *gorm.DB, from, to time.Time) ([]entity.Appointment, error)
	FindBlockingByDate(db *gorm.DB, date time.Time) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
