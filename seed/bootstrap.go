package seed

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureAdminUser creates the bootstrap admin account with the admin role if
// no user with that username exists yet. The password is hashed here rather
// than shipped as a fixture.
func EnsureAdminUser(ctx context.Context, db *gorm.DB, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int
		if err := tx.Raw(`SELECT 1 FROM users WHERE username = ? LIMIT 1`, username).Row().Scan(&exists); err == nil {
			return nil
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash bootstrap password: %w", err)
		}
		var userID int64
		if err := tx.Raw(
			`INSERT INTO users (username, password_hash, real_name, is_active) VALUES (?, ?, ?, TRUE) RETURNING id`,
			username, string(hash), "Administrator").Scan(&userID).Error; err != nil {
			return err
		}
		var roleID int64
		if err := tx.Raw(`SELECT id FROM roles WHERE role_name = 'admin' LIMIT 1`).Scan(&roleID).Error; err != nil {
			return err
		}
		if roleID == 0 {
			log.Printf("bootstrap: admin role not seeded, user %q created without roles", username)
			return nil
		}
		return tx.Exec(`INSERT INTO user_roles (user_id, role_id) VALUES (?, ?)`, userID, roleID).Error
	})
}

// EnsureAdminUserFromEnv creates the bootstrap admin from
// BOOTSTRAP_ADMIN_USERNAME / BOOTSTRAP_ADMIN_PASSWORD when both are set.
func EnsureAdminUserFromEnv(ctx context.Context, db *gorm.DB) error {
	return EnsureAdminUser(ctx, db,
		strings.TrimSpace(os.Getenv("BOOTSTRAP_ADMIN_USERNAME")),
		os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"))
}
