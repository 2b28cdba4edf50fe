package server

import (
	"fmt"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
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

// newTestAPI stands up the full engine over a real database and returns an
// httpexpect client against it. Skips when no test database is configured.
func newTestAPI(t *testing.T) (*httpexpect.Expect, *Server) {
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

	cfg := &AppConfig{Env: "test"}
	cfg.JWT.Secret = "server-test-secret"
	srv := NewServerWithDB(cfg, db)

	ts := httptest.NewServer(NewGinEngine(srv))
	t.Cleanup(ts.Close)

	return httpexpect.Default(t, ts.URL), srv
}

var usernameCounter int64

func uniqueUsername(prefix string) string {
	n := atomic.AddInt64(&usernameCounter, 1)
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixNano(), n)
}

// mustCreatePermission inserts a catalog row directly; the API has no write
// path for permissions.
func mustCreatePermission(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	var id int64
	err := db.Raw(`INSERT INTO permissions (perm_name, description) VALUES (?, '') RETURNING id`, name).Scan(&id).Error
	if err != nil {
		t.Fatalf("insert permission: %v", err)
	}
	return id
}
