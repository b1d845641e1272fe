package handlers

import (
	"drone-route-service/internal/api/dto"
	"drone-route-service/internal/ports"
	"net/http"
)

// LocationHandler exposes the read-only scenario network.
type LocationHandler struct {
	Repo ports.ScenarioRepository
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	sc, err := h.Repo.LoadScenario(r.Context())
	if err != nil {
		writeServiceError(w, r, "list locations", err)
		return
	}

	res := dto.ListLocationsResponse{
		Depot:     sc.DepotID,
		Locations: make([]dto.LocationResponse, 0, len(sc.Locations)),
	}
	for _, l := range sc.Locations {
		demand := sc.Demand.Of(l.ID)
		res.TotalDemand += demand
		res.Locations = append(res.Locations, dto.LocationResponse{
			ID:          l.ID,
			Coordinates: l.Coordinates.CoordsToList(),
			Demand:      demand,
			IsDepot:     l.ID == sc.DepotID,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
