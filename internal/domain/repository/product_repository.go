package repository

import (
	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(db *gorm.DB, product *entity.Product) error
	FindAll(db *gorm.DB, category string, limit, offset int) ([]entity.Product, int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Product, error)
	FindLowStock(db *gorm.DB, threshold int) ([]entity.Product, error)
	Update(db *gorm.DB, product *entity.Product) error
	DecrementStock(db *gorm.DB, id uuid.UUID, qty int) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) error
}
