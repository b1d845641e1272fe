package ports

import "drone-route-service/internal/domain"

// Contract for the flown distance between two coordinates.
type DistanceProvider interface {
	// Return the distance in kilometers. Must be symmetric and zero for equal inputs.
	DistanceKm(a, b domain.Coordinates) float64
}
