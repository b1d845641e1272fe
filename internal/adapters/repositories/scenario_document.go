package repositories

import (
	"drone-route-service/internal/domain"
	"fmt"
	"strings"
)

// ScenarioDocument is the serialized form of a scenario shared by the JSON
// seed files and the YAML scenario files.
type ScenarioDocument struct {
	Depot       string             `json:"depot" yaml:"depot"`
	Locations   []LocationDocument `json:"locations" yaml:"locations"`
	CurrentDraw map[int]float64    `json:"current_draw,omitempty" yaml:"current_draw,omitempty"`
}

type LocationDocument struct {
	ID     string  `json:"id" yaml:"id"`
	Lat    float64 `json:"lat" yaml:"lat"`
	Lon    float64 `json:"lon" yaml:"lon"`
	Demand int     `json:"demand" yaml:"demand"`
}

// Scenario converts the document, trimming ids. Structural validation is left
// to domain.Scenario.Network.
func (d ScenarioDocument) Scenario() (*domain.Scenario, error) {
	depot := strings.TrimSpace(d.Depot)
	if depot == "" {
		return nil, fmt.Errorf("scenario document: depot is empty: %w", domain.ErrInvalidConfig)
	}

	sc := &domain.Scenario{
		DepotID:   depot,
		Locations: make([]domain.Location, 0, len(d.Locations)),
		Demand:    make(domain.Demand, len(d.Locations)),
	}
	for i, l := range d.Locations {
		id := strings.TrimSpace(l.ID)
		if id == "" {
			return nil, fmt.Errorf("scenario document: location at index %d has empty id: %w", i+1, domain.ErrInvalidConfig)
		}
		sc.Locations = append(sc.Locations, domain.Location{
			ID:          id,
			Coordinates: domain.Coordinates{Lat: l.Lat, Lon: l.Lon},
		})
		sc.Demand[id] = l.Demand
	}
	if len(d.CurrentDraw) > 0 {
		sc.CurrentDraw = make(map[int]float64, len(d.CurrentDraw))
		for k, v := range d.CurrentDraw {
			sc.CurrentDraw[k] = v
		}
	}

	return sc, nil
}
