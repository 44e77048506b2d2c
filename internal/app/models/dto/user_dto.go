package dto

// SetRoleRequest assigns a role to a user. Admin-only.
type SetRoleRequest struct {
	Role string `json:"role" example:"instructor"` // Validated by the service; empty clears the role
}

// RoleCheckResponse answers a boolean capability check. Mismatched identity
// and unknown users both answer false.
type RoleCheckResponse struct {
	Email   string `json:"email"`
	HasRole bool   `json:"hasRole"`
}
