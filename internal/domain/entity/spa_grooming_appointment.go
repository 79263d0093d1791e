package entity

import (
	"time"

	"github.com/google/uuid"
)

// SpaServiceType identifies the kind of spa/grooming appointment
type SpaServiceType string

const (
	SpaServiceSpa      SpaServiceType = "spa"
	SpaServiceGrooming SpaServiceType = "grooming"
)

// ValidSpaServiceType reports whether t is a known service type
func ValidSpaServiceType(t SpaServiceType) bool {
	return t == SpaServiceSpa || t == SpaServiceGrooming
}

// BranchService maps the spa service type onto the branch service catalogue
func (t SpaServiceType) BranchService() BranchService {
	if t == SpaServiceGrooming {
		return ServiceGrooming
	}
	return ServiceSpa
}

// SpaGroomingAppointment represents a spa or grooming booking.
// Structurally parallel to Appointment but kept in its own table with an
// independent identity space.
type SpaGroomingAppointment struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PetID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"pet_id"`
	ClientID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"client_id"`
	BranchID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"branch_id"`
	ServiceType SpaServiceType    `gorm:"type:varchar(20);not null" json:"service_type"`
	Date        time.Time         `gorm:"type:date;not null;index" json:"date"`
	Time        string            `gorm:"type:varchar(5);not null" json:"time"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes       string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Pet    Pet    `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	Branch Branch `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
}

func (SpaGroomingAppointment) TableName() string {
	return "spa_grooming_appointments"
}

// IsCancelled reports whether the appointment has been cancelled
func (a *SpaGroomingAppointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// BlocksSlot reports whether the appointment holds its time slot
func (a *SpaGroomingAppointment) BlocksSlot() bool {
	return a.Status == AppointmentStatusPending || a.Status == AppointmentStatusConfirmed
}

// SlotDate returns the calendar date of the appointment as YYYY-MM-DD
func (a *SpaGroomingAppointment) SlotDate() string {
	return a.Date.Format("2006-01-02")
}

// SlotTime returns the HH:MM slot label of the appointment
func (a *SpaGroomingAppointment) SlotTime() string {
	return a.Time
}

// SlotBranchID returns the branch the appointment belongs to
func (a *SpaGroomingAppointment) SlotBranchID() uuid.UUID {
	return a.BranchID
}

// SpaGroomingPatch is an explicit partial update for a spa/grooming appointment
type SpaGroomingPatch struct {
	ServiceType *SpaServiceType
	Date        *time.Time
	Time        *string
	Status      *AppointmentStatus
	Notes       *string
}

// Apply merges the patch into the appointment
func (a *SpaGroomingAppointment) Apply(patch SpaGroomingPatch) {
	if patch.ServiceType != nil {
		a.ServiceType = *patch.ServiceType
	}
	if patch.Date != nil {
		a.Date = *patch.Date
	}
	if patch.Time != nil {
		a.Time = *patch.Time
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.Notes != nil {
		a.Notes = *patch.Notes
	}
}
