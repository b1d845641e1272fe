package config

import (
	"drone-route-service/internal/domain"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Scenario sources understood by the composition roots.
const (
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
	SourceFile     = "file"
)

// Config holds the process settings read from the environment.
type Config struct {
	Port           string
	ScenarioSource string
	DBPath         string
	DatabaseURL    string
	SeedPath       string
	ScenarioPath   string

	InitialPayload    int
	FlightVelocityKmh float64
	LookupMode        domain.LookupMode
	OptimizerWorkers  int

	PlanRatePerSec float64
	PlanRateBurst  int
}

// Get returns the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads and validates the configuration. Callers load .env beforehand.
func Load() (Config, error) {
	c := Config{
		Port:           Get("PORT", "8080"),
		ScenarioSource: strings.ToLower(Get("SCENARIO_SOURCE", SourceSQLite)),
		DBPath:         Get("DB_PATH", "data/app.db"),
		DatabaseURL:    Get("DATABASE_URL", ""),
		SeedPath:       Get("SEED_PATH", "data/seeds/scenario.json"),
		ScenarioPath:   Get("SCENARIO_PATH", "data/scenario.yaml"),
	}

	var err error
	if c.InitialPayload, err = getInt("INITIAL_PAYLOAD", 200); err != nil {
		return Config{}, err
	}
	if c.FlightVelocityKmh, err = getFloat("FLIGHT_VELOCITY_KMH", 7); err != nil {
		return Config{}, err
	}
	if c.LookupMode, err = domain.ParseLookupMode(Get("CURRENT_LOOKUP_MODE", "")); err != nil {
		return Config{}, fmt.Errorf("config: CURRENT_LOOKUP_MODE: %w", err)
	}
	if c.OptimizerWorkers, err = getInt("OPTIMIZER_WORKERS", 0); err != nil {
		return Config{}, err
	}
	if c.PlanRatePerSec, err = getFloat("PLAN_RATE_PER_SEC", 2); err != nil {
		return Config{}, err
	}
	if c.PlanRateBurst, err = getInt("PLAN_RATE_BURST", 4); err != nil {
		return Config{}, err
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.ScenarioSource {
	case SourceSQLite, SourceFile:
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required for source %q: %w", c.ScenarioSource, domain.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("config: unknown SCENARIO_SOURCE %q: %w", c.ScenarioSource, domain.ErrInvalidConfig)
	}

	if c.InitialPayload < 0 {
		return fmt.Errorf("config: INITIAL_PAYLOAD must be >= 0: %w", domain.ErrInvalidConfig)
	}
	if !(c.FlightVelocityKmh > 0) {
		return fmt.Errorf("config: FLIGHT_VELOCITY_KMH must be > 0: %w", domain.ErrInvalidConfig)
	}
	if c.OptimizerWorkers < 0 {
		return fmt.Errorf("config: OPTIMIZER_WORKERS must be >= 0: %w", domain.ErrInvalidConfig)
	}
	if !(c.PlanRatePerSec > 0) || c.PlanRateBurst < 1 {
		return fmt.Errorf("config: plan rate limit must be positive: %w", domain.ErrInvalidConfig)
	}
	return nil
}

func getInt(key string, fallback int) (int, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q: %w", key, raw, domain.ErrInvalidConfig)
	}
	return v, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q: %w", key, raw, domain.ErrInvalidConfig)
	}
	return v, nil
}
