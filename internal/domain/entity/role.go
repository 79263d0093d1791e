package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin        = 1
	RoleIDVeterinarian = 2
	RoleIDReceptionist = 3
	RoleIDClient       = 4
)

// Role name constants
const (
	RoleAdmin        = "admin"
	RoleVeterinarian = "veterinarian"
	RoleReceptionist = "receptionist"
	RoleClient       = "client"
)

// RoleIDByName maps a role name back to its ID, returning 0 for unknown names
func RoleIDByName(name string) int {
	switch name {
	case RoleAdmin:
		return RoleIDAdmin
	case RoleVeterinarian:
		return RoleIDVeterinarian
	case RoleReceptionist:
		return RoleIDReceptionist
	case RoleClient:
		return RoleIDClient
	default:
		return 0
	}
}

// RoleNameByID maps a role ID to its canonical name
func RoleNameByID(id int) string {
	switch id {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDVeterinarian:
		return RoleVeterinarian
	case RoleIDReceptionist:
		return RoleReceptionist
	case RoleIDClient:
		return RoleClient
	default:
		return ""
	}
}
