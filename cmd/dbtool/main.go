package main

import (
	"context"
	"database/sql"
	"drone-route-service/internal/adapters/repositories"
	"drone-route-service/internal/config"
	"drone-route-service/internal/platform/db"
	"log"

	"github.com/joho/godotenv"
)

// dbtool creates the scenario schema and seeds it from a JSON document.
// DATABASE_URL selects Postgres; without it DB_PATH is used with SQLite.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	seedPath := config.Get("SEED_PATH", "data/seeds/scenario.json")

	var (
		conn    *sql.DB
		dialect repositories.Dialect
		err     error
	)
	if databaseURL := config.Get("DATABASE_URL", ""); databaseURL != "" {
		conn, err = db.Open(databaseURL)
		dialect = repositories.Postgres
	} else {
		conn, err = db.OpenSQLite(config.Get("DB_PATH", "data/app.db"))
		dialect = repositories.SQLite
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	return initAndSeed(ctx, conn, dialect, seedPath)
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect repositories.Dialect, seedPath string) error {
	log.Printf("Initializing database schema... dialect=%s", dialect.Name)
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Printf("Seeding database... seed=%s", seedPath)
	if err := repositories.SeedFromJSON(ctx, conn, dialect, seedPath); err != nil {
		return err
	}
	log.Println("Seeding complete.")

	return nil
}
