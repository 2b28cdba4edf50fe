package dto

import "github.com/risk-platform/admin-api/models"

// UserSummary represents a user in list responses. The field names are the
// panel frontend's contract: real_name maps to realName and is_active to a
// status string.
type UserSummary struct {
	ID       int64         `json:"id"`
	Username string        `json:"username"`
	RealName string        `json:"realName"`
	Email    string        `json:"email"`
	Phone    string        `json:"phone"`
	Status   models.Status `json:"status"`
	RoleIDs  []int64       `json:"roleIds"`
}

// FromUser converts a models.User and its assigned role ids to a UserSummary.
// A nil roleIDs renders as an empty JSON array, never null.
func FromUser(u *models.User, roleIDs []int64) UserSummary {
	if roleIDs == nil {
		roleIDs = []int64{}
	}
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		RealName: u.RealName,
		Email:    u.Email,
		Phone:    u.Phone,
		Status:   u.Status(),
		RoleIDs:  roleIDs,
	}
}

// LoginUser is the user payload returned alongside a session token.
type LoginUser struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	RealName  string   `json:"realName"`
	RoleNames []string `json:"roleNames"`
}

// FromLogin builds the login payload; a nil roleNames renders as [].
func FromLogin(u *models.User, roleNames []string) LoginUser {
	if roleNames == nil {
		roleNames = []string{}
	}
	return LoginUser{
		ID:        u.ID,
		Username:  u.Username,
		RealName:  u.RealName,
		RoleNames: roleNames,
	}
}
