package ports

import (
	"context"
	"drone-route-service/internal/domain"
)

// Port: a read-only boundary for loading the fixed input of a planning run.
type ScenarioRepository interface {
	// Retrieve the depot, locations, demand and optional current-draw table.
	LoadScenario(ctx context.Context) (*domain.Scenario, error)
}
