package domain

import (
	"errors"
	"math"
	"testing"
)

func TestReferenceCurrentDrawTable(t *testing.T) {
	table := ReferenceCurrentDrawTable()

	if table.Len() != 201 {
		t.Fatalf("len = %d, want 201", table.Len())
	}

	cases := map[int]float64{
		0:   15.23,
		20:  16.39,
		70:  19.36,
		110: 22.06,
		200: 28.48,
	}
	for units, want := range cases {
		got, ok, err := table.Lookup(units)
		if err != nil || !ok {
			t.Fatalf("lookup %d: ok=%v err=%v", units, ok, err)
		}
		if got != want {
			t.Fatalf("lookup %d = %v, want %v", units, got, want)
		}
	}

	prev := -1.0
	for units := 0; units <= 200; units++ {
		got, _, _ := table.Lookup(units)
		if got < prev {
			t.Fatalf("table not monotonic at %d: %v < %v", units, got, prev)
		}
		prev = got
	}
}

func TestCurrentDrawExactMissFallsBackToZero(t *testing.T) {
	table := ReferenceCurrentDrawTable()

	for _, units := range []int{-1, 201, 1000} {
		got, ok, err := table.Lookup(units)
		if err != nil {
			t.Fatalf("lookup %d: unexpected error: %v", units, err)
		}
		if ok {
			t.Fatalf("lookup %d: reported as tabulated", units)
		}
		if got != 0 {
			t.Fatalf("lookup %d = %v, want 0", units, got)
		}
	}
}

func TestCurrentDrawInterpolate(t *testing.T) {
	table := NewCurrentDrawTable(map[int]float64{0: 10, 10: 20, 20: 40}).WithMode(LookupInterpolate)

	cases := []struct {
		units int
		want  float64
	}{
		{units: 5, want: 15},
		{units: 15, want: 30},
		{units: -3, want: 10},
		{units: 25, want: 40},
		{units: 10, want: 20},
	}
	for _, tc := range cases {
		got, _, err := table.Lookup(tc.units)
		if err != nil {
			t.Fatalf("lookup %d: unexpected error: %v", tc.units, err)
		}
		if math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("lookup %d = %v, want %v", tc.units, got, tc.want)
		}
	}
}

func TestCurrentDrawStrict(t *testing.T) {
	table := ReferenceCurrentDrawTable().WithMode(LookupStrict)

	if _, _, err := table.Lookup(-5); !errors.Is(err, ErrOutOfTable) {
		t.Fatalf("err = %v, want ErrOutOfTable", err)
	}
	if v, ok, err := table.Lookup(50); err != nil || !ok || v != 18.13 {
		t.Fatalf("lookup 50 = %v ok=%v err=%v", v, ok, err)
	}
}

func TestParseLookupMode(t *testing.T) {
	for in, want := range map[string]LookupMode{"": LookupExact, "exact": LookupExact, "interpolate": LookupInterpolate, "strict": LookupStrict} {
		got, err := ParseLookupMode(in)
		if err != nil || got != want {
			t.Fatalf("parse %q = %v, %v; want %v", in, got, err, want)
		}
	}

	if _, err := ParseLookupMode("nearest"); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestScenarioNetworkValidation(t *testing.T) {
	s := &Scenario{
		DepotID: "HUB",
		Locations: []Location{
			{ID: "HUB", Coordinates: Coordinates{Lat: 50, Lon: 4}},
			{ID: "A", Coordinates: Coordinates{Lat: 50.1, Lon: 4}},
		},
		Demand: Demand{"A": 10},
	}

	if _, err := s.Network(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Demand = Demand{}
	if _, err := s.Network(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("missing demand: err = %v, want ErrInvalidConfig", err)
	}

	s.Demand = Demand{"A": -1}
	if _, err := s.Network(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("negative demand: err = %v, want ErrInvalidConfig", err)
	}

	s.Demand = Demand{"A": 1}
	s.Locations[1].Coordinates.Lat = 91
	if _, err := s.Network(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("bad latitude: err = %v, want ErrInvalidConfig", err)
	}

	if s.Table().Len() != 201 {
		t.Fatalf("scenario without table should fall back to reference data")
	}
}
