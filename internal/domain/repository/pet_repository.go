package repository

import (
	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PetRepository interface {
	Create(db *gorm.DB, pet *entity.Pet) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Pet, error)
	FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.Pet, error)
	FindAll(db *gorm.DB) ([]entity.Pet, error)
	Update(db *gorm.DB, pet *entity.Pet) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
