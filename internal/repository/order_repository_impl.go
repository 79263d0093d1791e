package repository

import (
	"errors"

	"vetclinic-backend/internal/domain/entity"
	domainRepo "vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepository struct{}

func NewOrderRepository() domainRepo.OrderRepository {
	return &orderRepository{}
}

func (r *orderRepository) Create(db *gorm.DB, order *entity.Order) error {
	return db.Create(order).Error
}

func (r *orderRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := db.Preload("Items").Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.Order, error) {
	var orders []entity.Order
	err := db.Preload("Items").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindAll(db *gorm.DB) ([]entity.Order, error) {
	var orders []entity.Order
	err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.OrderStatus) (int64, error) {
	result := db.Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
