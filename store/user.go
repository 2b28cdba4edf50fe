package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/risk-platform/admin-api/models"
)

// ErrUsernameTaken is returned by Register when the username is already in use.
var ErrUsernameTaken = errors.New("username already exists")

// UserStore provides operations for users and their role links.
type UserStore struct {
	DB *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore { return &UserStore{DB: db} }

// FindByUsername returns the user with the exact username, or nil if none.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.DB.WithContext(ctx).Raw(
		`SELECT id, username, password_hash, real_name, email, phone, is_active, created_at
		 FROM users WHERE username = ?`, username).Scan(&u).Error
	if err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	if u.ID == 0 {
		return nil, nil
	}
	return &u, nil
}

// RoleNamesForUser returns the names of all roles assigned to the user.
func (s *UserStore) RoleNamesForUser(ctx context.Context, userID int64) ([]string, error) {
	var names []string
	err := s.DB.WithContext(ctx).Raw(
		`SELECT r.role_name FROM roles r
		 JOIN user_roles ur ON ur.role_id = r.id
		 WHERE ur.user_id = ?`, userID).Scan(&names).Error
	if err != nil {
		return nil, fmt.Errorf("list role names: %w", err)
	}
	return names, nil
}

// Register inserts a new active user with no role links.
// Fails with ErrUsernameTaken on an exact username match.
func (s *UserStore) Register(ctx context.Context, username, passwordHash, realName string) (int64, error) {
	var id int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int
		if err := tx.Raw(`SELECT 1 FROM users WHERE username = ? LIMIT 1`, username).Row().Scan(&exists); err == nil {
			return ErrUsernameTaken
		}
		return tx.Raw(
			`INSERT INTO users (username, password_hash, real_name, is_active) VALUES (?, ?, ?, TRUE) RETURNING id`,
			username, passwordHash, realName).Scan(&id).Error
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// List returns users ordered by creation time descending, plus a map of
// user id to assigned role ids. A non-empty search term restricts to users
// whose username or real name contains it as a case-sensitive substring.
func (s *UserStore) List(ctx context.Context, search string) ([]models.User, map[int64][]int64, error) {
	q := `SELECT id, username, password_hash, real_name, email, phone, is_active, created_at FROM users`
	var args []interface{}
	if strings.TrimSpace(search) != "" {
		q += ` WHERE username LIKE ? OR real_name LIKE ?`
		fuzzy := "%" + search + "%"
		args = append(args, fuzzy, fuzzy)
	}
	q += ` ORDER BY created_at DESC`

	var users []models.User
	if err := s.DB.WithContext(ctx).Raw(q, args...).Scan(&users).Error; err != nil {
		return nil, nil, fmt.Errorf("list users: %w", err)
	}

	var links []models.UserRole
	if err := s.DB.WithContext(ctx).Raw(`SELECT user_id, role_id FROM user_roles`).Scan(&links).Error; err != nil {
		return nil, nil, fmt.Errorf("list user roles: %w", err)
	}
	roleIDs := make(map[int64][]int64, len(users))
	for _, l := range links {
		roleIDs[l.UserID] = append(roleIDs[l.UserID], l.RoleID)
	}
	return users, roleIDs, nil
}

// Create inserts an active user and one user_roles row per role id.
// Role ids are not validated here; referential integrity lives in the schema.
func (s *UserStore) Create(ctx context.Context, username, passwordHash, realName string, roleIDs []int64) (int64, error) {
	var id int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Raw(
			`INSERT INTO users (username, password_hash, real_name, is_active) VALUES (?, ?, ?, TRUE) RETURNING id`,
			username, passwordHash, realName).Scan(&id).Error; err != nil {
			return err
		}
		for _, rid := range roleIDs {
			if err := tx.Exec(`INSERT INTO user_roles (user_id, role_id) VALUES (?, ?)`, id, rid).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// UserUpdate carries the mutable user fields. PasswordHash nil leaves the
// stored hash untouched. RoleIDs nil leaves existing links untouched, while
// a non-nil (possibly empty) slice replaces the full link set.
type UserUpdate struct {
	Username     string
	RealName     string
	PasswordHash *string
	RoleIDs      *[]int64
}

// Update rewrites username/real_name and applies the optional fields.
// Returns gorm.ErrRecordNotFound when no user matches the id.
func (s *UserStore) Update(ctx context.Context, userID int64, upd UserUpdate) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := `UPDATE users SET username = ?, real_name = ?`
		args := []interface{}{upd.Username, upd.RealName}
		if upd.PasswordHash != nil {
			q += `, password_hash = ?`
			args = append(args, *upd.PasswordHash)
		}
		q += ` WHERE id = ?`
		args = append(args, userID)

		res := tx.Exec(q, args...)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if upd.RoleIDs == nil {
			return nil
		}
		if err := tx.Exec(`DELETE FROM user_roles WHERE user_id = ?`, userID).Error; err != nil {
			return err
		}
		for _, rid := range *upd.RoleIDs {
			if err := tx.Exec(`INSERT INTO user_roles (user_id, role_id) VALUES (?, ?)`, userID, rid).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the user row; its user_roles rows go with it via the
// schema's cascade. Returns gorm.ErrRecordNotFound when no user matches.
func (s *UserStore) Delete(ctx context.Context, userID int64) error {
	res := s.DB.WithContext(ctx).Exec(`DELETE FROM users WHERE id = ?`, userID)
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetActive persists the is_active flag.
func (s *UserStore) SetActive(ctx context.Context, userID int64, active bool) error {
	res := s.DB.WithContext(ctx).Exec(`UPDATE users SET is_active = ? WHERE id = ?`, active, userID)
	if res.Error != nil {
		return fmt.Errorf("set user status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RoleIDsForUser returns the role ids currently linked to the user.
func (s *UserStore) RoleIDsForUser(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := s.DB.WithContext(ctx).Raw(`SELECT role_id FROM user_roles WHERE user_id = ?`, userID).Scan(&ids).Error
	if err != nil {
		return nil, fmt.Errorf("list role ids: %w", err)
	}
	return ids, nil
}
