package distance

import (
	"drone-route-service/internal/domain"
	"fmt"
)

// MockPair fixes the distance between two coordinates in both directions.
type MockPair struct {
	From, To domain.Coordinates
	Km       float64
}

// MockDistanceProvider serves fixed distances for tests that need exact ties or
// hand-checkable totals. Unlisted pairs fall back to the haversine distance.
type MockDistanceProvider struct {
	m     map[string]float64
	Calls int
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[string]float64, 2*len(pairs))
	for _, p := range pairs {
		m[pairKey(p.From, p.To)] = p.Km
		m[pairKey(p.To, p.From)] = p.Km
	}
	return &MockDistanceProvider{m: m}
}

func pairKey(a, b domain.Coordinates) string {
	return fmt.Sprintf("%.7f,%.7f|%.7f,%.7f", a.Lat, a.Lon, b.Lat, b.Lon)
}

func (p *MockDistanceProvider) DistanceKm(a, b domain.Coordinates) float64 {
	p.Calls++
	if a == b {
		return 0
	}
	if km, ok := p.m[pairKey(a, b)]; ok {
		return km
	}
	return HaversineKm(a, b)
}
