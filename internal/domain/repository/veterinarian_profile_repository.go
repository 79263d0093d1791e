package repository

import (
	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VeterinarianProfileRepository interface {
	Create(db *gorm.DB, profile *entity.VeterinarianProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.VeterinarianProfile, error)
	FindAll(db *gorm.DB) ([]entity.VeterinarianProfile, error)
	FindByBranchID(db *gorm.DB, branchID uuid.UUID) ([]entity.VeterinarianProfile, error)
	Update(db *gorm.DB, profile *entity.VeterinarianProfile) error
	Delete(db *gorm.DB, userID uuid.UUID) error
}
