package distance

import (
	"drone-route-service/internal/domain"
	"math"
	"testing"
)

var (
	vub         = domain.Coordinates{Lat: 50.8222329, Lon: 4.3969074}
	edithCavell = domain.Coordinates{Lat: 50.8139343, Lon: 4.3578839}
	saintJean   = domain.Coordinates{Lat: 50.8543172, Lon: 4.3603786}
)

func TestHaversineKnownDistance(t *testing.T) {
	got := HaversineKm(vub, edithCavell)
	want := 2.8925830020997614
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("distance = %v, want %v", got, want)
	}
}

func TestHaversineSymmetricAndZero(t *testing.T) {
	points := []domain.Coordinates{
		vub,
		edithCavell,
		saintJean,
		{Lat: -33.8688, Lon: 151.2093},
		{Lat: 90, Lon: 0},
		{Lat: 0, Lon: -180},
	}

	for _, a := range points {
		if d := HaversineKm(a, a); d != 0 {
			t.Fatalf("distance(%v, %v) = %v, want 0", a, a, d)
		}
		for _, b := range points {
			ab := HaversineKm(a, b)
			ba := HaversineKm(b, a)
			if ab != ba {
				t.Fatalf("asymmetric: %v vs %v", ab, ba)
			}
			if ab < 0 {
				t.Fatalf("negative distance %v", ab)
			}
		}
	}
}

func TestHaversineTriangleInequality(t *testing.T) {
	pts := []domain.Coordinates{vub, edithCavell, saintJean, {Lat: 51.2, Lon: 4.4}}
	for _, a := range pts {
		for _, b := range pts {
			for _, c := range pts {
				if HaversineKm(a, c) > HaversineKm(a, b)+HaversineKm(b, c)+1e-9 {
					t.Fatalf("triangle inequality violated for %v %v %v", a, b, c)
				}
			}
		}
	}
}

func TestHaversineMatrixMatchesPairwise(t *testing.T) {
	locs := []domain.Location{
		{ID: "VUB", Coordinates: vub},
		{ID: "Edith Cavell", Coordinates: edithCavell},
		{ID: "Clinique Saint-Jean", Coordinates: saintJean},
	}

	m := Haversine{}.Matrix(locs)
	for i := range locs {
		for j := range locs {
			want := HaversineKm(locs[i].Coordinates, locs[j].Coordinates)
			if m[i][j] != want {
				t.Fatalf("matrix[%d][%d] = %v, want %v", i, j, m[i][j], want)
			}
		}
	}
}

func TestMockDistanceProvider(t *testing.T) {
	p := NewMockDistanceProvider([]MockPair{{From: vub, To: edithCavell, Km: 5}})

	if got := p.DistanceKm(edithCavell, vub); got != 5 {
		t.Fatalf("reverse pair = %v, want 5", got)
	}
	if got := p.DistanceKm(vub, vub); got != 0 {
		t.Fatalf("self distance = %v, want 0", got)
	}
	if got := p.DistanceKm(vub, saintJean); got != HaversineKm(vub, saintJean) {
		t.Fatalf("fallback = %v, want haversine", got)
	}
	if p.Calls != 3 {
		t.Fatalf("calls = %d, want 3", p.Calls)
	}
}
