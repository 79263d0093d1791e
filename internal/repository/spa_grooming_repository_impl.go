package repository

import (
	"errors"
	"time"

	"vetclinic-backend/internal/domain/entity"
	domainRepo "vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type spaGroomingRepository struct{}

func NewSpaGroomingRepository() domainRepo.SpaGroomingRepository {
	return &spaGroomingRepository{}
}

func (r *spaGroomingRepository) Create(db *gorm.DB, appointment *entity.SpaGroomingAppointment) error {
	return db.Create(appointment).Error
}

func (r *spaGroomingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.SpaGroomingAppointment, error) {
	var appointment entity.SpaGroomingAppointment
	err := db.Preload("Pet").Preload("Branch").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *spaGroomingRepository) FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.SpaGroomingAppointment, error) {
	var appointments []entity.SpaGroomingAppointment
	err := db.Preload("Pet").Preload("Branch").
		Where("client_id = ?", clientID).
		Order("date DESC, time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *spaGroomingRepository) FindByBranchAndDate(db *gorm.DB, branchID uuid.UUID, date time.Time) ([]entity.SpaGroomingAppointment, error) {
	var appointments []entity.SpaGroomingAppointment
	err := db.Where("branch_id = ? AND date = ?", branchID, date.Format("2006-01-02")).
		Order("time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *spaGroomingRepository) FindByDateRange(db *gorm.DB, from, to time.Time) ([]entity.SpaGroomingAppointment, error) {
	var appointments []entity.SpaGroomingAppointment
	err := db.Where("date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *spaGroomingRepository) Update(db *gorm.DB, appointment *entity.SpaGroomingAppointment) error {
	return db.Save(appointment).Error
}

func (r *spaGroomingRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.SpaGroomingAppointment{}).Error
}
