package repository

import (
	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(db *gorm.DB, order *entity.Order) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Order, error)
	FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.Order, error)
	FindAll(db *gorm.DB) ([]entity.Order, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.OrderStatus) (int64, error)
}
