package repositories

import (
	"context"
	"database/sql"
	"drone-route-service/internal/domain"
	"drone-route-service/internal/platform/obs"
	"errors"
	"fmt"
)

// SQL-backed implementation of the ScenarioRepository port. The queries are
// portable between SQLite and Postgres.
type SQLScenarioRepository struct{ DB *sql.DB }

func NewSQLScenarioRepository(db *sql.DB) *SQLScenarioRepository {
	return &SQLScenarioRepository{DB: db}
}

// Load the depot, locations in seeded order, demand and current-draw table.
func (s *SQLScenarioRepository) LoadScenario(ctx context.Context) (sc *domain.Scenario, err error) {
	defer obs.Time(ctx, "load_scenario_sql")(&err)

	if s.DB == nil {
		return nil, errors.New("sql scenario repository: DB is nil")
	}

	query := `
	SELECT
		location_id,
		lat,
		lon,
		demand,
		is_depot
	FROM locations
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load scenario: query locations table: %w", err)
	}
	defer rows.Close()

	sc = &domain.Scenario{Demand: domain.Demand{}}
	for rows.Next() {
		var loc domain.Location
		var demand, isDepot int
		if err := rows.Scan(&loc.ID, &loc.Coordinates.Lat, &loc.Coordinates.Lon, &demand, &isDepot); err != nil {
			return nil, fmt.Errorf("load scenario: scan location row: %w", err)
		}
		if isDepot != 0 {
			if sc.DepotID != "" {
				return nil, fmt.Errorf("load scenario: depots %q and %q: %w", sc.DepotID, loc.ID, domain.ErrInvalidConfig)
			}
			sc.DepotID = loc.ID
		}
		sc.Locations = append(sc.Locations, loc)
		sc.Demand[loc.ID] = demand
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load scenario: location row iteration: %w", err)
	}
	if len(sc.Locations) == 0 {
		return nil, fmt.Errorf("load scenario: no locations seeded: %w", domain.ErrInvalidConfig)
	}

	draw, err := s.currentDraw(ctx)
	if err != nil {
		return nil, err
	}
	sc.CurrentDraw = draw

	return sc, nil
}

func (s *SQLScenarioRepository) currentDraw(ctx context.Context) (map[int]float64, error) {
	rows, err := s.DB.QueryContext(ctx, `
	SELECT
		payload_units,
		current_a
	FROM current_draw
	ORDER BY payload_units;
	`)
	if err != nil {
		return nil, fmt.Errorf("load scenario: query current_draw table: %w", err)
	}
	defer rows.Close()

	out := map[int]float64{}
	for rows.Next() {
		var units int
		var amps float64
		if err := rows.Scan(&units, &amps); err != nil {
			return nil, fmt.Errorf("load scenario: scan current_draw row: %w", err)
		}
		out[units] = amps
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load scenario: current_draw row iteration: %w", err)
	}

	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
