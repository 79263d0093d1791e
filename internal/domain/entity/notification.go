package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification type constants
const (
	NotificationTypeAppointment = "appointment"
	NotificationTypeOrder       = "order"
	NotificationTypeReminder    = "reminder"
	NotificationTypeSystem      = "system"
)

// Notification is a message delivered to a user's notification feed
type Notification struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Message       string     `gorm:"type:text;not null" json:"message"`
	Type          string     `gorm:"type:varchar(30);not null;index" json:"type"`
	AppointmentID *uuid.UUID `gorm:"type:uuid" json:"appointment_id,omitempty"`
	IsRead        bool       `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
