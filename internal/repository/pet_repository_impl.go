package repository

import (
	"errors"

	"vetclinic-backend/internal/domain/entity"
	domainRepo "vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type petRepository struct{}

func NewPetRepository() domainRepo.PetRepository {
	return &petRepository{}
}

func (r *petRepository) Create(db *gorm.DB, pet *entity.Pet) error {
	return db.Create(pet).Error
}

func (r *petRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Pet, error) {
	var pet entity.Pet
	err := db.Where("id = ?", id).First(&pet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.Pet, error) {
	var pets []entity.Pet
	err := db.Where("client_id = ?", clientID).Order("created_at ASC").Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) FindAll(db *gorm.DB) ([]entity.Pet, error) {
	var pets []entity.Pet
	err := db.Order("created_at DESC").Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) Update(db *gorm.DB, pet *entity.Pet) error {
	return db.Save(pet).Error
}

func (r *petRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Pet{}).Error
}
