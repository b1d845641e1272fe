package ports

import "drone-route-service/internal/domain"

// Optional extension of DistanceProvider that builds all pairwise distances at once.
type DistanceMatrixProvider interface {
	DistanceProvider
	// Return an n x n matrix indexed like locations.
	Matrix(locations []domain.Location) [][]float64
}
