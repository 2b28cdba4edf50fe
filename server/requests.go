package server

// Request payloads for the JSON API. UpdateUserRequest.RoleIDs is a pointer
// so an omitted roleIds key (keep existing links) stays distinguishable from
// an explicit empty array (clear all links).

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	RealName string `json:"realName"`
}

type CreateUserRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	RealName string  `json:"realName"`
	RoleIDs  []int64 `json:"roleIds"`
}

type UpdateUserRequest struct {
	Username string   `json:"username"`
	RealName string   `json:"realName"`
	Password string   `json:"password"`
	RoleIDs  *[]int64 `json:"roleIds"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

type RoleRequest struct {
	RoleName      string  `json:"role_name"`
	Description   string  `json:"description"`
	PermissionIDs []int64 `json:"permissionIds"`
}
