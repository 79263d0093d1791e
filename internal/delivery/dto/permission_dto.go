package dto

// Request DTOs

type SetPermissionRequest struct {
	Role     string `json:"role" validate:"required,oneof=admin veterinarian receptionist client"`
	Resource string `json:"resource" validate:"required,max=50"`
	Action   string `json:"action" validate:"required,oneof=view create edit delete"`
	Allowed  bool   `json:"allowed"`
}

// Response DTOs

// PermissionMatrixResponse nests role -> resource -> action -> allowed.
type PermissionMatrixResponse struct {
	Matrix map[string]map[string]map[string]bool `json:"matrix"`
}
