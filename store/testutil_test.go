package store

import (
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getTestDSN() string {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		dsn = os.Getenv("MIGRATE_DSN")
	}
	return dsn
}

// openTestDB opens a gorm handle against the test database, skipping the
// test when none is configured.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := getTestDSN()
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

var usernameCounter int64

// uniqueUsername avoids collisions across runs against a shared database.
func uniqueUsername(prefix string) string {
	n := atomic.AddInt64(&usernameCounter, 1)
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixNano(), n)
}

// mustCreatePermission inserts a catalog row directly; the service has no
// write path for permissions.
func mustCreatePermission(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	var id int64
	err := db.Raw(`INSERT INTO permissions (perm_name, description) VALUES (?, '') RETURNING id`, name).Scan(&id).Error
	if err != nil {
		t.Fatalf("insert permission: %v", err)
	}
	return id
}
