package entity

// Permission resources (the screens/collections the matrix covers)
const (
	ResourceAppointments = "appointments"
	ResourceClients      = "clients"
	ResourcePets         = "pets"
	ResourceInventory    = "inventory"
	ResourceMarketplace  = "marketplace"
	ResourceCommunity    = "community"
	ResourceBranches     = "branches"
	ResourceReports      = "reports"
)

// Permission actions
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// RolePermission is one cell of the role/resource/action permission matrix
type RolePermission struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleID   int    `gorm:"not null;index:idx_role_resource_action,unique" json:"role_id"`
	Resource string `gorm:"type:varchar(50);not null;index:idx_role_resource_action,unique" json:"resource"`
	Action   string `gorm:"type:varchar(20);not null;index:idx_role_resource_action,unique" json:"action"`
	Allowed  bool   `gorm:"not null;default:false" json:"allowed"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

// PermissionMatrix is the nested role -> resource -> action -> allowed lookup
type PermissionMatrix map[string]map[string]map[string]bool

// BuildPermissionMatrix folds permission rows into the nested lookup keyed by
// role name. Missing cells default to false.
func BuildPermissionMatrix(perms []RolePermission) PermissionMatrix {
	matrix := make(PermissionMatrix)
	for _, p := range perms {
		role := RoleNameByID(p.RoleID)
		if role == "" {
			continue
		}
		if matrix[role] == nil {
			matrix[role] = make(map[string]map[string]bool)
		}
		if matrix[role][p.Resource] == nil {
			matrix[role][p.Resource] = make(map[string]bool)
		}
		matrix[role][p.Resource][p.Action] = p.Allowed
	}
	return matrix
}

// DefaultPermissions returns the seed matrix: admins get everything, staff
// get operational screens, clients get their own data plus the marketplace
// and community.
func DefaultPermissions() []RolePermission {
	resources := []string{
		ResourceAppointments, ResourceClients, ResourcePets, ResourceInventory,
		ResourceMarketplace, ResourceCommunity, ResourceBranches, ResourceReports,
	}
	actions := []string{ActionView, ActionCreate, ActionEdit, ActionDelete}

	allowed := func(roleID int, resource, action string) bool {
		switch roleID {
		case RoleIDAdmin:
			return true
		case RoleIDVeterinarian:
			switch resource {
			case ResourceAppointments, ResourcePets, ResourceCommunity:
				return action != ActionDelete
			case ResourceClients:
				return action == ActionView
			}
		case RoleIDReceptionist:
			switch resource {
			case ResourceAppointments, ResourceClients, ResourcePets:
				return true
			case ResourceInventory, ResourceBranches:
				return action == ActionView
			}
		case RoleIDClient:
			switch resource {
			case ResourceAppointments, ResourcePets:
				return action == ActionView || action == ActionCreate
			case ResourceMarketplace, ResourceCommunity:
				return action != ActionDelete
			}
		}
		return false
	}

	var perms []RolePermission
	for _, roleID := range []int{RoleIDAdmin, RoleIDVeterinarian, RoleIDReceptionist, RoleIDClient} {
		for _, resource := range resources {
			for _, action := range actions {
				perms = append(perms, RolePermission{
					RoleID:   roleID,
					Resource: resource,
					Action:   action,
					Allowed:  allowed(roleID, resource, action),
				})
			}
		}
	}
	return perms
}
