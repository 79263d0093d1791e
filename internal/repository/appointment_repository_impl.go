package repository

import (
	"errors"
	"time"

	"vetclinic-backend/internal/domain/entity"
	domainRepo "vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Pet").Preload("Branch").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Pet").Preload("Branch").
		Where("client_id = ?", clientID).
		Order("date DESC, time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByVeterinarianID(db *gorm.DB, veterinarianID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Pet").
		Where("veterinarian_id = ?", veterinarianID).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByBranchAndDate(db *gorm.DB, branchID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("branch_id = ? AND date = ?", branchID, date.Format("2006-01-02")).
		Order("time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDateRange(db *gorm.DB, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindBlockingByDate returns pending and confirmed appointments on a date,
// used by the daily reminder job.
func (r *appointmentRepository) FindBlockingByDate(db *gorm.DB, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Pet").
		Where("date = ? AND status IN ?", date.Format("2006-01-02"),
			[]entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed}).
		Order("time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Appointment{}).Error
}
