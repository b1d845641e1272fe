package distance

import (
	"drone-route-service/internal/domain"
	"math"
)

// EarthRadiusKm is the mean Earth radius used by the great-circle model.
const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points in kilometers.
// Inputs are decimal degrees; range checking is left to the caller.
func HaversineKm(a, b domain.Coordinates) float64 {
	lat1 := degToRad(a.Lat)
	lat2 := degToRad(b.Lat)
	dLat := lat2 - lat1
	dLon := degToRad(b.Lon) - degToRad(a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * math.Asin(math.Sqrt(h)) * EarthRadiusKm
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Haversine implements DistanceMatrixProvider over the great-circle model.
// The zero value is ready to use and safe for concurrent use.
type Haversine struct{}

func (Haversine) DistanceKm(a, b domain.Coordinates) float64 {
	return HaversineKm(a, b)
}

// Matrix fills both triangles from one computation per pair so the matrix is
// exactly symmetric.
func (Haversine) Matrix(locations []domain.Location) [][]float64 {
	n := len(locations)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := HaversineKm(locations[i].Coordinates, locations[j].Coordinates)
			m[i][j] = d
			m[j][i] = d
		}
	}

	return m
}
