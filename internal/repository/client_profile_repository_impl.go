package repository

import (
	"errors"

	"vetclinic-backend/internal/domain/entity"
	domainRepo "vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clientProfileRepository struct{}

func NewClientProfileRepository() domainRepo.ClientProfileRepository {
	return &clientProfileRepository{}
}

func (r *clientProfileRepository) Create(db *gorm.DB, profile *entity.ClientProfile) error {
	return db.Create(profile).Error
}

func (r *clientProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ClientProfile, error) {
	var profile entity.ClientProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *clientProfileRepository) FindAll(db *gorm.DB) ([]entity.ClientProfile, error) {
	var profiles []entity.ClientProfile
	err := db.Preload("User").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *clientProfileRepository) Update(db *gorm.DB, profile *entity.ClientProfile) error {
	return db.Save(profile).Error
}
