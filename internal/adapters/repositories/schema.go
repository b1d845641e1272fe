package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Dialect captures the SQL differences between the supported drivers.
type Dialect struct {
	Name        string
	placeholder func(i int) string
}

var (
	SQLite   = Dialect{Name: "sqlite", placeholder: func(int) string { return "?" }}
	Postgres = Dialect{Name: "postgres", placeholder: func(i int) string { return "$" + strconv.Itoa(i) }}
)

// args renders n placeholders separated by commas.
func (d Dialect) args(n int) string {
	out := ""
	for i := 1; i <= n; i++ {
		if i > 1 {
			out += ", "
		}
		out += d.placeholder(i)
	}
	return out
}

// Initialize the scenario schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		location_id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		demand INTEGER NOT NULL DEFAULT 0,
		is_depot INTEGER NOT NULL DEFAULT 0
	);
	`

	createCurrentDrawQuery := `
	CREATE TABLE IF NOT EXISTS current_draw (
		payload_units INTEGER PRIMARY KEY,
		current_a DOUBLE PRECISION NOT NULL
	);
	`

	createPositionIndexQuery := `
	CREATE UNIQUE INDEX IF NOT EXISTS idx_locations_position
	ON locations(position);
	`

	statements := []string{
		createLocationsQuery,
		createCurrentDrawQuery,
		createPositionIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// ReadSeedFile parses a JSON scenario document.
func ReadSeedFile(jsonPath string) (ScenarioDocument, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return ScenarioDocument{}, fmt.Errorf("read seed: read %q: %w", jsonPath, err)
	}

	var doc ScenarioDocument
	if err := json.Unmarshal(bytes, &doc); err != nil {
		return ScenarioDocument{}, fmt.Errorf("read seed: parse json: %w", err)
	}
	return doc, nil
}

// Populate the database with scenario data from a JSON file, replacing any
// previous scenario.
func SeedFromJSON(ctx context.Context, db *sql.DB, d Dialect, jsonPath string) error {
	doc, err := ReadSeedFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed scenario: %w", err)
	}
	return Seed(ctx, db, d, doc)
}

// Seed writes a validated scenario document.
func Seed(ctx context.Context, db *sql.DB, d Dialect, doc ScenarioDocument) error {
	sc, err := doc.Scenario()
	if err != nil {
		return fmt.Errorf("seed scenario: %w", err)
	}
	if _, err := sc.Network(); err != nil {
		return fmt.Errorf("seed scenario: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed scenario: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"locations", "current_draw"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("seed scenario: clear %s: %w", table, err)
		}
	}

	locStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO locations (
		location_id,
		position,
		lat,
		lon,
		demand,
		is_depot
	)
	VALUES (`+d.args(6)+`);
	`)
	if err != nil {
		return fmt.Errorf("seed scenario: prepare location insert: %w", err)
	}
	defer locStmt.Close()

	for i, loc := range sc.Locations {
		isDepot := 0
		if loc.ID == sc.DepotID {
			isDepot = 1
		}
		if _, err := locStmt.ExecContext(ctx, loc.ID, i, loc.Coordinates.Lat, loc.Coordinates.Lon, sc.Demand.Of(loc.ID), isDepot); err != nil {
			return fmt.Errorf("seed scenario: insert location_id=%q: %w", loc.ID, err)
		}
	}

	if len(sc.CurrentDraw) > 0 {
		drawStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO current_draw (
			payload_units,
			current_a
		)
		VALUES (`+d.args(2)+`);
		`)
		if err != nil {
			return fmt.Errorf("seed scenario: prepare current draw insert: %w", err)
		}
		defer drawStmt.Close()

		for units, amps := range sc.CurrentDraw {
			if _, err := drawStmt.ExecContext(ctx, units, amps); err != nil {
				return fmt.Errorf("seed scenario: insert payload_units=%d: %w", units, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed scenario: commit tx: %w", err)
	}

	return nil
}
