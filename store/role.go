package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/risk-platform/admin-api/models"
)

// RoleStore provides operations for roles and their permission links.
type RoleStore struct {
	DB *gorm.DB
}

func NewRoleStore(db *gorm.DB) *RoleStore { return &RoleStore{DB: db} }

// ListWithPermissionIDs returns all roles plus a map of role id to the
// permission ids currently granted to it.
func (s *RoleStore) ListWithPermissionIDs(ctx context.Context) ([]models.Role, map[int64][]int64, error) {
	var roles []models.Role
	if err := s.DB.WithContext(ctx).Raw(`SELECT id, role_name, description FROM roles ORDER BY id ASC`).Scan(&roles).Error; err != nil {
		return nil, nil, fmt.Errorf("list roles: %w", err)
	}
	var links []models.RolePermission
	if err := s.DB.WithContext(ctx).Raw(`SELECT role_id, permission_id FROM role_permissions`).Scan(&links).Error; err != nil {
		return nil, nil, fmt.Errorf("list role permissions: %w", err)
	}
	permIDs := make(map[int64][]int64, len(roles))
	for _, l := range links {
		permIDs[l.RoleID] = append(permIDs[l.RoleID], l.PermissionID)
	}
	return roles, permIDs, nil
}

// Create inserts a role and one role_permissions row per permission id.
func (s *RoleStore) Create(ctx context.Context, roleName, description string, permissionIDs []int64) (int64, error) {
	var id int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Raw(
			`INSERT INTO roles (role_name, description) VALUES (?, ?) RETURNING id`,
			roleName, description).Scan(&id).Error; err != nil {
			return err
		}
		for _, pid := range permissionIDs {
			if err := tx.Exec(`INSERT INTO role_permissions (role_id, permission_id) VALUES (?, ?)`, id, pid).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("create role: %w", err)
	}
	return id, nil
}

// Update rewrites role_name/description and replaces the full permission
// link set. Unlike user updates, the permission set is always processed.
// Returns gorm.ErrRecordNotFound when no role matches the id.
func (s *RoleStore) Update(ctx context.Context, roleID int64, roleName, description string, permissionIDs []int64) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`UPDATE roles SET role_name = ?, description = ? WHERE id = ?`, roleName, description, roleID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Exec(`DELETE FROM role_permissions WHERE role_id = ?`, roleID).Error; err != nil {
			return err
		}
		for _, pid := range permissionIDs {
			if err := tx.Exec(`INSERT INTO role_permissions (role_id, permission_id) VALUES (?, ?)`, roleID, pid).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the role; its role_permissions rows go with it via the
// schema's cascade. user_roles rows referencing the role are intentionally
// left in place, matching the behavior clients of this API rely on.
// Returns gorm.ErrRecordNotFound when no role matches.
func (s *RoleStore) Delete(ctx context.Context, roleID int64) error {
	res := s.DB.WithContext(ctx).Exec(`DELETE FROM roles WHERE id = ?`, roleID)
	if res.Error != nil {
		return fmt.Errorf("delete role: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
