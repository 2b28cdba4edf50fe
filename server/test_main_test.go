package server

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	"github.com/risk-platform/admin-api/migrate"
)

// TestMain prepares the schema when a test database is configured. Without
// TEST_DB_DSN the DB-backed tests skip themselves and only pure tests run.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	dsn := getTestDSN()
	if strings.TrimSpace(dsn) == "" {
		log.Printf("TEST_DB_DSN not set, server API tests will be skipped")
		os.Exit(m.Run())
	}

	driver := "postgres"

	var ready bool
	for i := 0; i < 20; i++ {
		if db, err := sql.Open(driver, dsn); err == nil {
			if err = db.Ping(); err == nil {
				ready = true
				_ = db.Close()
				break
			}
			_ = db.Close()
		}
		time.Sleep(1 * time.Second)
	}
	if !ready {
		panic(fmt.Sprintf("postgres is not ready: dsn=%s", dsn))
	}

	logger := log.New(os.Stdout, "[server-migrate] ", log.LstdFlags)
	if err := migrate.Run(migrate.Options{
		Driver:  driver,
		DSN:     dsn,
		Command: "up",
		Logger:  logger,
	}); err != nil {
		panic(fmt.Sprintf("server test migration failed: %v", err))
	}

	os.Exit(m.Run())
}
