package entity

import "github.com/google/uuid"

// ClientProfile represents pet-owner specific profile data
type ClientProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	PhoneNumber string    `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`

	// Relationships
	User User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Pets []Pet `gorm:"foreignKey:ClientID" json:"pets,omitempty"`
}

func (ClientProfile) TableName() string {
	return "client_profiles"
}
