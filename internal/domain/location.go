package domain

import (
	"fmt"
	"strings"
)

// Represents a named point the vehicle can fly to: the depot or a demand point.
type Location struct {
	ID          string
	Coordinates Coordinates
}

// Network is the fixed-index view of a delivery problem's locations.
// Index lookups replace repeated map access on hot paths; the depot is stored
// alongside the demand points in input order.
type Network struct {
	locations []Location
	index     map[string]int
	depot     int
	points    []int
}

// NewNetwork builds a Network from locations in input order. The depot must be
// present, ids must be unique and at least one demand point is required.
func NewNetwork(locations []Location, depotID string) (*Network, error) {
	depotID = strings.TrimSpace(depotID)
	if depotID == "" {
		return nil, fmt.Errorf("new network: %w: depot id must not be empty", ErrInvalidConfig)
	}

	n := &Network{
		locations: make([]Location, 0, len(locations)),
		index:     make(map[string]int, len(locations)),
		depot:     -1,
	}

	for i, loc := range locations {
		if strings.TrimSpace(loc.ID) == "" {
			return nil, fmt.Errorf("new network: %w: location at index %d has empty id", ErrInvalidConfig, i)
		}
		if _, ok := n.index[loc.ID]; ok {
			return nil, fmt.Errorf("new network: %w: duplicate location id %q", ErrInvalidConfig, loc.ID)
		}

		n.index[loc.ID] = len(n.locations)
		n.locations = append(n.locations, loc)

		if loc.ID == depotID {
			n.depot = i
			continue
		}
		n.points = append(n.points, i)
	}

	if n.depot < 0 {
		return nil, fmt.Errorf("new network: %w: depot %q not found among locations", ErrInvalidConfig, depotID)
	}
	if len(n.points) == 0 {
		return nil, fmt.Errorf("new network: %w: no demand points besides depot %q", ErrInvalidConfig, depotID)
	}

	return n, nil
}

// Len returns the number of locations including the depot.
func (n *Network) Len() int { return len(n.locations) }

// Depot returns the depot's index.
func (n *Network) Depot() int { return n.depot }

// DepotID returns the depot's identifier.
func (n *Network) DepotID() string { return n.locations[n.depot].ID }

// DemandPoints returns the indices of all non-depot locations in input order.
// The returned slice is a copy.
func (n *Network) DemandPoints() []int {
	out := make([]int, len(n.points))
	copy(out, n.points)
	return out
}

// At returns the location stored at index i.
func (n *Network) At(i int) Location { return n.locations[i] }

// ID returns the identifier of the location at index i.
func (n *Network) ID(i int) string { return n.locations[i].ID }

// IndexOf resolves an identifier to its index.
func (n *Network) IndexOf(id string) (int, bool) {
	i, ok := n.index[id]
	return i, ok
}

// Locations returns a copy of all locations in input order.
func (n *Network) Locations() []Location {
	out := make([]Location, len(n.locations))
	copy(out, n.locations)
	return out
}

// Resolve converts a tour of identifiers into location indices.
func (n *Network) Resolve(tour Tour) ([]int, error) {
	out := make([]int, len(tour))
	for i, id := range tour {
		idx, ok := n.index[id]
		if !ok {
			return nil, fmt.Errorf("resolve tour: position %d: %w %q", i, ErrUnknownLocation, id)
		}
		out[i] = idx
	}
	return out, nil
}
