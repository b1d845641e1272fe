package handlers

import (
	"drone-route-service/internal/ports"
	"log"
	"net/http"
)

// HealthHandler reports liveness and whether the scenario can be loaded.
type HealthHandler struct {
	Repo ports.ScenarioRepository
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	sc, err := h.Repo.LoadScenario(r.Context())
	if err == nil {
		_, err = sc.Network()
	}
	if err != nil {
		log.Printf("health: scenario unavailable: %v", err)
		writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "scenario": "unavailable"})
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{"status": "ok", "locations": len(sc.Locations)})
}
