package entity

import "github.com/google/uuid"

// VeterinarianProfile represents veterinarian-specific profile data
type VeterinarianProfile struct {
	UserID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	LicenseNumber string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specialty     string     `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Biography     string     `gorm:"type:text" json:"biography,omitempty"`
	BranchID      *uuid.UUID `gorm:"type:uuid;index" json:"branch_id,omitempty"`

	// Relationships
	User   User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Branch *Branch `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
}

func (VeterinarianProfile) TableName() string {
	return "veterinarian_profiles"
}
