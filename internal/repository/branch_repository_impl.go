package repository

import (
	"errors"

	"vetclinic-backend/internal/domain/entity"
	domainRepo "vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type branchRepository struct{}

func NewBranchRepository() domainRepo.BranchRepository {
	return &branchRepository{}
}

func (r *branchRepository) Create(db *gorm.DB, branch *entity.Branch) error {
	return db.Create(branch).Error
}

func (r *branchRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Branch, error) {
	var branch entity.Branch
	err := db.Where("id = ?", id).First(&branch).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepository) FindAll(db *gorm.DB) ([]entity.Branch, error) {
	var branches []entity.Branch
	err := db.Order("name ASC").Find(&branches).Error
	if err != nil {
		return nil, err
	}
	return branches, nil
}

// FindActive returns active branches only; service filtering happens in the
// usecase because the services column is jsonb.
func (r *branchRepository) FindActive(db *gorm.DB) ([]entity.Branch, error) {
	var branches []entity.Branch
	err := db.Where("is_active = ?", true).Order("name ASC").Find(&branches).Error
	if err != nil {
		return nil, err
	}
	return branches, nil
}

func (r *branchRepository) Update(db *gorm.DB, branch *entity.Branch) error {
	return db.Save(branch).Error
}

func (r *branchRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Branch{}).Error
}
