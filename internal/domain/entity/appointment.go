package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// ValidAppointmentStatus reports whether s is a known status value
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment represents a clinic consultation booking
type Appointment struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PetID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"pet_id"`
	ClientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"client_id"`
	VeterinarianID *uuid.UUID        `gorm:"type:uuid;index" json:"veterinarian_id,omitempty"`
	BranchID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"branch_id"`
	Date           time.Time         `gorm:"type:date;not null;index" json:"date"`
	Time           string            `gorm:"type:varchar(5);not null" json:"time"`
	Reason         string            `gorm:"type:text;not null" json:"reason"`
	Status         AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes          string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Pet    Pet    `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	Branch Branch `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled reports whether the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// BlocksSlot reports whether the appointment holds its time slot.
// Cancelled and completed appointments free the slot.
func (a *Appointment) BlocksSlot() bool {
	return a.Status == AppointmentStatusPending || a.Status == AppointmentStatusConfirmed
}

// SlotDate returns the calendar date of the appointment as YYYY-MM-DD
func (a *Appointment) SlotDate() string {
	return a.Date.Format("2006-01-02")
}

// SlotTime returns the HH:MM slot label of the appointment
func (a *Appointment) SlotTime() string {
	return a.Time
}

// SlotBranchID returns the branch the appointment belongs to
func (a *Appointment) SlotBranchID() uuid.UUID {
	return a.BranchID
}

// AppointmentPatch is an explicit partial update for an appointment.
// Nil fields are left untouched; status transitions are not constrained here.
type AppointmentPatch struct {
	VeterinarianID *uuid.UUID
	Date           *time.Time
	Time           *string
	Reason         *string
	Status         *AppointmentStatus
	Notes          *string
}

// Apply merges the patch into the appointment
func (a *Appointment) Apply(patch AppointmentPatch) {
	if patch.VeterinarianID != nil {
		a.VeterinarianID = patch.VeterinarianID
	}
	if patch.Date != nil {
		a.Date = *patch.Date
	}
	if patch.Time != nil {
		a.Time = *patch.Time
	}
	if patch.Reason != nil {
		a.Reason = *patch.Reason
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.Notes != nil {
		a.Notes = *patch.Notes
	}
}
