package main

import (
	"context"
	"log"

	"github.com/risk-platform/admin-api/migrate"
	"github.com/risk-platform/admin-api/seed"
	"github.com/risk-platform/admin-api/server"
)

func main() {
	cfg := server.GetConfig()

	// Optional schema migrations and seed data before serving.
	// MIGRATE_ON_START=1 MIGRATE_DRIVER=postgres MIGRATE_DSN=...
	if err := migrate.RunFromEnv(); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}
	if err := seed.RunFromEnv(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("server init failed: %v", err)
	}
	defer srv.Close()

	if err := seed.EnsureAdminUserFromEnv(context.Background(), srv.DB()); err != nil {
		log.Fatalf("bootstrap admin failed: %v", err)
	}

	engine := server.NewGinEngine(srv)
	addr := cfg.ServerAddr()
	log.Printf("admin api listening on %s (env=%s)", addr, cfg.Env)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
