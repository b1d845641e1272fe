package services

import (
	"context"
	"drone-route-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	vub       = "VUB"
	edith     = "Edith Cavell"
	europe    = "Cliniques de l'Europe"
	epsylon   = "Epsylon ASBL"
	etterbeek = "Hôpital Etterbeek-Ixelles"
	saintJean = "Clinique Saint-Jean"
	iris      = "Hôpitaux iris Ziekenhuizen"
	optimumKm = 19.435134523085424
	singleKm  = 17.20766567455092
	distTolKm = 1e-9
)

func brusselsScenario() *domain.Scenario {
	return &domain.Scenario{
		DepotID: vub,
		Locations: []domain.Location{
			{ID: vub, Coordinates: domain.Coordinates{Lat: 50.8222329, Lon: 4.3969074}},
			{ID: edith, Coordinates: domain.Coordinates{Lat: 50.8139343, Lon: 4.3578839}},
			{ID: europe, Coordinates: domain.Coordinates{Lat: 50.8050334, Lon: 4.3686235}},
			{ID: epsylon, Coordinates: domain.Coordinates{Lat: 50.7861456, Lon: 4.3666663}},
			{ID: etterbeek, Coordinates: domain.Coordinates{Lat: 50.8252055, Lon: 4.3787444}},
			{ID: saintJean, Coordinates: domain.Coordinates{Lat: 50.8543172, Lon: 4.3603786}},
			{ID: iris, Coordinates: domain.Coordinates{Lat: 50.8334341, Lon: 4.3559617}},
		},
		Demand: domain.Demand{
			vub:       0,
			etterbeek: 30,
			saintJean: 20,
			europe:    50,
			edith:     40,
			iris:      40,
			epsylon:   20,
		},
	}
}

func brusselsNetwork(t *testing.T) *domain.Network {
	t.Helper()
	n, err := brusselsScenario().Network()
	require.NoError(t, err)
	return n
}

type staticScenarioRepo struct {
	sc  *domain.Scenario
	err error
}

func (r staticScenarioRepo) LoadScenario(ctx context.Context) (*domain.Scenario, error) {
	return r.sc, r.err
}

func intPtr(v int) *int { return &v }
