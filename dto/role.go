package dto

import "github.com/risk-platform/admin-api/models"

// RoleResponse is a role decorated with the ids of permissions granted to it.
type RoleResponse struct {
	ID            int64   `json:"id"`
	RoleName      string  `json:"role_name"`
	Description   string  `json:"description"`
	PermissionIDs []int64 `json:"permissionIds"`
}

// FromRole converts a models.Role and its permission ids to a RoleResponse.
// A nil permissionIDs renders as an empty JSON array.
func FromRole(r *models.Role, permissionIDs []int64) RoleResponse {
	if permissionIDs == nil {
		permissionIDs = []int64{}
	}
	return RoleResponse{
		ID:            r.ID,
		RoleName:      r.RoleName,
		Description:   r.Description,
		PermissionIDs: permissionIDs,
	}
}

// FromRoles converts roles with the role id -> permission ids map.
func FromRoles(roles []models.Role, permIDs map[int64][]int64) []RoleResponse {
	responses := make([]RoleResponse, len(roles))
	for i := range roles {
		responses[i] = FromRole(&roles[i], permIDs[roles[i].ID])
	}
	return responses
}
