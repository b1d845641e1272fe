package handlers

import (
	"drone-route-service/internal/api/dto"
	"drone-route-service/internal/domain"
	"drone-route-service/internal/ports"
	"drone-route-service/internal/services"
	"net/http"
)

type EnergyHandler struct {
	Repo     ports.ScenarioRepository
	Provider ports.DistanceProvider
	Defaults Defaults
}

// Evaluate scores caller-supplied tours against the scenario. A single tour
// uses the requested initial payload; subroutes each carry their own demand.
func (h *EnergyHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.EnergyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if (len(req.Tour) == 0) == (len(req.Subroutes) == 0) {
		writeError(w, r, http.StatusBadRequest, "exactly one of tour or subroutes is required")
		return
	}

	mode, err := h.Defaults.lookupMode(req.LookupMode)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	sc, err := h.Repo.LoadScenario(r.Context())
	if err != nil {
		writeServiceError(w, r, "load scenario", err)
		return
	}
	n, err := sc.Network()
	if err != nil {
		writeServiceError(w, r, "load scenario", err)
		return
	}

	model := services.NewConsumptionModel(sc.Table().WithMode(mode))
	if h.Defaults.FlightVelocityKmh > 0 {
		model.FlightVelocityKmh = h.Defaults.FlightVelocityKmh
	}
	if req.FlightVelocityKmh != nil {
		model.FlightVelocityKmh = *req.FlightVelocityKmh
	}
	if h.Provider != nil {
		model.Distance = h.Provider
	}

	if len(req.Tour) > 0 {
		tour := domain.Tour(req.Tour)
		initial := h.Defaults.InitialPayload
		if req.InitialPayload != nil {
			initial = *req.InitialPayload
		} else if initial == 0 {
			initial = services.RoutePayload(tour, n.DepotID(), sc.Demand)
		}

		tr, err := model.EvaluateTour(n, sc.Demand, tour, initial)
		if err != nil {
			writeServiceError(w, r, "evaluate tour", err)
			return
		}
		writeJSON(w, r, http.StatusOK, dto.EnergyResponse{
			TotalEnergyWh: tr.TotalEnergyWh,
			Traces:        []dto.TraceResponse{toTraceResponse(tr)},
		})
		return
	}

	subtours := make([]domain.Tour, 0, len(req.Subroutes))
	for _, st := range req.Subroutes {
		subtours = append(subtours, domain.Tour(st))
	}
	total, traces, err := model.EvaluateSubroutes(n, sc.Demand, subtours)
	if err != nil {
		writeServiceError(w, r, "evaluate subroutes", err)
		return
	}

	res := dto.EnergyResponse{TotalEnergyWh: total, Traces: make([]dto.TraceResponse, 0, len(traces))}
	for _, tr := range traces {
		res.Traces = append(res.Traces, toTraceResponse(tr))
	}
	writeJSON(w, r, http.StatusOK, res)
}
