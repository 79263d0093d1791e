package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pet represents an animal registered by a client
type Pet struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Species   string    `gorm:"type:varchar(50);not null" json:"species"`
	Breed     string    `gorm:"type:varchar(100)" json:"breed,omitempty"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	WeightKg  float64   `gorm:"type:decimal(5,2)" json:"weight_kg,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Client ClientProfile `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

func (Pet) TableName() string {
	return "pets"
}
