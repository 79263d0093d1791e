package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BranchService identifies a service a branch offers
type BranchService string

const (
	ServiceConsultation    BranchService = "consultation"
	ServiceShop            BranchService = "shop"
	ServiceHospitalization BranchService = "hospitalization"
	ServiceEmergency       BranchService = "emergency"
	ServiceSpa             BranchService = "spa"
	ServiceGrooming        BranchService = "grooming"
)

// ServiceList is the set of services a branch offers, stored as jsonb
type ServiceList []BranchService

// Value implements driver.Valuer
func (s ServiceList) Value() (driver.Value, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner
func (s *ServiceList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal service list value:", value))
	}
	return json.Unmarshal(bytes, s)
}

// Contains reports whether the list includes the given service
func (s ServiceList) Contains(service BranchService) bool {
	for _, svc := range s {
		if svc == service {
			return true
		}
	}
	return false
}

// Branch represents a clinic location
type Branch struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string      `gorm:"type:varchar(255);not null" json:"name"`
	Address      string      `gorm:"type:text" json:"address,omitempty"`
	Services     ServiceList `gorm:"type:jsonb" json:"services"`
	IsActive     bool        `gorm:"not null;default:true;index" json:"is_active"`
	Is24Hours    bool        `gorm:"not null;default:false" json:"is_24_hours"`
	OpeningHours string      `gorm:"type:varchar(50)" json:"opening_hours,omitempty"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Branch) TableName() string {
	return "branches"
}

// CanBook reports whether the branch accepts bookings for the given service.
// Only active branches offering the service are selectable.
func (b *Branch) CanBook(service BranchService) bool {
	return b.IsActive && b.Services.Contains(service)
}
