package config

import (
	"drone-route-service/internal/domain"
	"errors"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "SCENARIO_SOURCE", "INITIAL_PAYLOAD", "FLIGHT_VELOCITY_KMH", "CURRENT_LOOKUP_MODE", "OPTIMIZER_WORKERS", "PLAN_RATE_PER_SEC", "PLAN_RATE_BURST"} {
		t.Setenv(k, "")
	}

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Port != "8080" {
		t.Fatalf("port = %q, want 8080", c.Port)
	}
	if c.ScenarioSource != SourceSQLite {
		t.Fatalf("source = %q, want sqlite", c.ScenarioSource)
	}
	if c.FlightVelocityKmh != 7 {
		t.Fatalf("velocity = %v, want 7", c.FlightVelocityKmh)
	}
	if c.LookupMode != domain.LookupExact {
		t.Fatalf("lookup mode = %v, want exact", c.LookupMode)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SCENARIO_SOURCE", " File ")
	t.Setenv("INITIAL_PAYLOAD", "110")
	t.Setenv("FLIGHT_VELOCITY_KMH", "9.5")
	t.Setenv("CURRENT_LOOKUP_MODE", "interpolate")

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ScenarioSource != SourceFile {
		t.Fatalf("source = %q, want file", c.ScenarioSource)
	}
	if c.InitialPayload != 110 || c.FlightVelocityKmh != 9.5 {
		t.Fatalf("payload/velocity = %d/%v, want 110/9.5", c.InitialPayload, c.FlightVelocityKmh)
	}
	if c.LookupMode != domain.LookupInterpolate {
		t.Fatalf("lookup mode = %v, want interpolate", c.LookupMode)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"FLIGHT_VELOCITY_KMH": "0",
		"INITIAL_PAYLOAD":     "lots",
		"SCENARIO_SOURCE":     "redis",
		"PLAN_RATE_BURST":     "0",
		"CURRENT_LOOKUP_MODE": "nearest",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := Load()
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestPostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("SCENARIO_SOURCE", "postgres")
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}
