package repository

import (
	"errors"

	"vetclinic-backend/internal/domain/entity"
	domainRepo "vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productRepository struct{}

func NewProductRepository() domainRepo.ProductRepository {
	return &productRepository{}
}

func (r *productRepository) Create(db *gorm.DB, product *entity.Product) error {
	return db.Create(product).Error
}

func (r *productRepository) FindAll(db *gorm.DB, category string, limit, offset int) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := db.Model(&entity.Product{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := db.Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindLowStock(db *gorm.DB, threshold int) ([]entity.Product, error) {
	var products []entity.Product
	err := db.Where("stock <= ?", threshold).Order("stock ASC").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Update(db *gorm.DB, product *entity.Product) error {
	return db.Save(product).Error
}

// DecrementStock atomically reduces stock, guarded against going negative.
// Returns affected rows: 0 means insufficient stock.
func (r *productRepository) DecrementStock(db *gorm.DB, id uuid.UUID, qty int) (int64, error) {
	result := db.Model(&entity.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	return result.RowsAffected, result.Error
}

func (r *productRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Product{}).Error
}
