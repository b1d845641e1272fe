package domain

import "fmt"

// Scenario is the fixed input of a planning run: where the vehicle starts, where
// it delivers, how much, and how it draws current. Loaded once, never mutated.
type Scenario struct {
	DepotID     string
	Locations   []Location
	Demand      Demand
	CurrentDraw map[int]float64
}

// Network builds and validates the scenario's location network and demand.
func (s *Scenario) Network() (*Network, error) {
	for _, loc := range s.Locations {
		if err := loc.Coordinates.Validate(); err != nil {
			return nil, fmt.Errorf("scenario network: location %q: %w", loc.ID, err)
		}
	}

	n, err := NewNetwork(s.Locations, s.DepotID)
	if err != nil {
		return nil, fmt.Errorf("scenario network: %w", err)
	}

	if err := s.Demand.Validate(n); err != nil {
		return nil, fmt.Errorf("scenario network: %w", err)
	}

	return n, nil
}

// Table returns the scenario's current-draw table, falling back to the
// reference measurements when the scenario carries none.
func (s *Scenario) Table() CurrentDrawTable {
	if len(s.CurrentDraw) == 0 {
		return ReferenceCurrentDrawTable()
	}
	return NewCurrentDrawTable(s.CurrentDraw)
}
