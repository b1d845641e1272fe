package repositories

import (
	"context"
	"database/sql"
	"drone-route-service/internal/config"
	"drone-route-service/internal/platform/db"
	"drone-route-service/internal/ports"
	"fmt"
	"log"
)

// Open returns the scenario repository selected by cfg.ScenarioSource and a
// close function for any underlying connection. A SQLite database is created
// and seeded from cfg.SeedPath for local runs.
func Open(ctx context.Context, cfg config.Config) (ports.ScenarioRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.ScenarioSource {
	case config.SourceFile:
		return NewFileScenarioRepository(cfg.ScenarioPath), noop, nil

	case config.SourceSQLite:
		conn, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open scenario repository: %w", err)
		}
		if err := initAndSeed(ctx, conn, cfg.SeedPath); err != nil {
			_ = conn.Close()
			return nil, nil, fmt.Errorf("open scenario repository: %w", err)
		}
		return NewSQLScenarioRepository(conn), conn.Close, nil

	case config.SourcePostgres:
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open scenario repository: %w", err)
		}
		return NewSQLScenarioRepository(conn), conn.Close, nil
	}

	return nil, nil, fmt.Errorf("open scenario repository: unknown source %q", cfg.ScenarioSource)
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string) error {
	if err := InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	if err := SeedFromJSON(ctx, conn, SQLite, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Printf("scenario seeded source=sqlite seed=%s", seedPath)
	return nil
}
