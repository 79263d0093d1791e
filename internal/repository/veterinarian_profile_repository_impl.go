package repository

import (
	"errors"

	"vetclinic-backend/internal/domain/entity"
	domainRepo "vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type veterinarianProfileRepository struct{}

func NewVeterinarianProfileRepository() domainRepo.VeterinarianProfileRepository {
	return &veterinarianProfileRepository{}
}

func (r *veterinarianProfileRepository) Create(db *gorm.DB, profile *entity.VeterinarianProfile) error {
	return db.Create(profile).Error
}

func (r *veterinarianProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.VeterinarianProfile, error) {
	var profile entity.VeterinarianProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *veterinarianProfileRepository) FindAll(db *gorm.DB) ([]entity.VeterinarianProfile, error) {
	var profiles []entity.VeterinarianProfile
	err := db.Preload("User").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *veterinarianProfileRepository) FindByBranchID(db *gorm.DB, branchID uuid.UUID) ([]entity.VeterinarianProfile, error) {
	var profiles []entity.VeterinarianProfile
	err := db.Preload("User").Where("branch_id = ?", branchID).Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *veterinarianProfileRepository) Update(db *gorm.DB, profile *entity.VeterinarianProfile) error {
	return db.Save(profile).Error
}

func (r *veterinarianProfileRepository) Delete(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&entity.VeterinarianProfile{}).Error
}
