package repository

import (
	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BranchRepository interface {
	Create(db *gorm.DB, branch *entity.Branch) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Branch, error)
	FindAll(db *gorm.DB) ([]entity.Branch, error)
	FindActive(db *gorm.DB) ([]entity.Branch, error)
	Update(db *gorm.DB, branch *entity.Branch) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
