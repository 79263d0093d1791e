package repository

import (
	"time"

	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SpaGroomingRepository interface {
	Create(db *gorm.DB, appointment *entity.SpaGroomingAppointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.SpaGroomingAppointment, error)
	FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.SpaGroomingAppointment, error)
	FindByBranchAndDate(db *gorm.DB, branchID uuid.UUID, date time.Time) ([]entity.SpaGroomingAppointment, error)
	FindByDateRange(db *gorm.DB, from, to time.Time) ([]entity.SpaGroomingAppointment, error)
	Update(db *gorm.DB, appointment *entity.SpaGroomingAppointment) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
