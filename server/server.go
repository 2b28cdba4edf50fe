package server

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/risk-platform/admin-api/generates"
	"github.com/risk-platform/admin-api/store"
)

// ErrDBDSNNotSet indicates no database DSN was configured.
var ErrDBDSNNotSet = errors.New("database DSN not set")

// defaultJWTSecret is used when no signing key is configured. Suitable for
// local development only; deployments set jwt.secret or JWT_SECRET.
const defaultJWTSecret = "dev_only_admin_panel_secret"

// Server owns the shared connection pool and the stores built on it.
// The pool is opened once at startup and released by Close.
type Server struct {
	cfg *AppConfig
	db  *gorm.DB

	Users       *store.UserStore
	Roles       *store.RoleStore
	Permissions *store.PermissionStore
	Sessions    *generates.SessionTokenGenerate
}

// NewServer opens the database pool from config and wires the stores.
func NewServer(cfg *AppConfig) (*Server, error) {
	dsn := cfg.DatabaseDSN()
	if dsn == "" {
		return nil, ErrDBDSNNotSet
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}
	maxOpen := cfg.Database.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 30
	}
	maxIdle := cfg.Database.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = 5
	}
	lifetime := time.Duration(cfg.Database.ConnMaxLifetime) * time.Minute
	if lifetime <= 0 {
		lifetime = time.Hour
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(lifetime)
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	log.Printf("database pool ready (max_open=%d max_idle=%d)", maxOpen, maxIdle)

	return NewServerWithDB(cfg, db), nil
}

// NewServerWithDB wires a Server onto an existing gorm handle. Used by tests
// that manage their own connection.
func NewServerWithDB(cfg *AppConfig, db *gorm.DB) *Server {
	secret := cfg.JWTSecret()
	if secret == "" {
		log.Printf("jwt secret not configured, using development default")
		secret = defaultJWTSecret
	}
	return &Server{
		cfg:         cfg,
		db:          db,
		Users:       store.NewUserStore(db),
		Roles:       store.NewRoleStore(db),
		Permissions: store.NewPermissionStore(db),
		Sessions:    generates.NewSessionTokenGenerate([]byte(secret), generates.DefaultSessionTTL),
	}
}

// DB exposes the shared gorm handle for startup tasks such as bootstrap.
func (s *Server) DB() *gorm.DB { return s.db }

// Close releases the connection pool.
func (s *Server) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
