package models

// Role groups permissions; users get permissions only through roles.
type Role struct {
	ID          int64  `gorm:"column:id;primaryKey" json:"id"`
	RoleName    string `gorm:"column:role_name" json:"role_name"`
	Description string `gorm:"column:description" json:"description"`
}

func (Role) TableName() string { return "roles" }

// Permission is a catalog entry. The catalog is read-only from this service;
// rows are created by seed data only.
type Permission struct {
	ID          int64  `gorm:"column:id;primaryKey" json:"id"`
	PermName    string `gorm:"column:perm_name" json:"perm_name"`
	Description string `gorm:"column:description" json:"description"`
}

func (Permission) TableName() string { return "permissions" }

// UserRole links a user to a role. Rows are owned by the user side:
// deleting the user cascades, deleting the role does not (see roles store).
type UserRole struct {
	UserID int64 `gorm:"column:user_id"`
	RoleID int64 `gorm:"column:role_id"`
}

func (UserRole) TableName() string { return "user_roles" }

// RolePermission links a role to a permission and is owned by the role side.
type RolePermission struct {
	RoleID       int64 `gorm:"column:role_id"`
	PermissionID int64 `gorm:"column:permission_id"`
}

func (RolePermission) TableName() string { return "role_permissions" }
