package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/risk-platform/admin-api/models"
)

// PermissionStore reads the permission catalog. The catalog has no write
// operations from this service; rows come from seed data.
type PermissionStore struct {
	DB *gorm.DB
}

func NewPermissionStore(db *gorm.DB) *PermissionStore { return &PermissionStore{DB: db} }

// List returns the full catalog ordered by id.
func (s *PermissionStore) List(ctx context.Context) ([]models.Permission, error) {
	var perms []models.Permission
	err := s.DB.WithContext(ctx).Raw(`SELECT id, perm_name, description FROM permissions ORDER BY id ASC`).Scan(&perms).Error
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	return perms, nil
}
