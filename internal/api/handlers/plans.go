package handlers

import (
	"drone-route-service/internal/api/dto"
	"drone-route-service/internal/ports"
	"drone-route-service/internal/services"
	"net/http"
	"strings"
)

type PlanHandler struct {
	Repo     ports.ScenarioRepository
	Provider ports.DistanceProvider
	Defaults Defaults
}

// Plan searches the shortest admissible tour for the loaded scenario and
// returns it with its energy estimate.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	svcReq := services.PlanDeliveriesRequest{
		FlightVelocityKmh:      h.Defaults.FlightVelocityKmh,
		Recharge:               true,
		MinStopsBeforeRecharge: req.MinStopsBeforeRecharge,
		Workers:                h.Defaults.Workers,
	}
	// A zero default leaves the payload to the planned tour's demand.
	switch {
	case req.InitialPayload != nil:
		svcReq.InitialPayload = req.InitialPayload
	case h.Defaults.InitialPayload > 0:
		initial := h.Defaults.InitialPayload
		svcReq.InitialPayload = &initial
	}
	if req.FlightVelocityKmh != nil {
		if *req.FlightVelocityKmh <= 0 {
			writeError(w, r, http.StatusBadRequest, "flight_velocity_kmh must be > 0")
			return
		}
		svcReq.FlightVelocityKmh = *req.FlightVelocityKmh
	}
	if req.Recharge != nil {
		svcReq.Recharge = *req.Recharge
	}
	if svcReq.Recharge && svcReq.MinStopsBeforeRecharge == 0 {
		svcReq.MinStopsBeforeRecharge = 1
	}
	for _, id := range req.ForbiddenPredecessors {
		if id = strings.TrimSpace(id); id != "" {
			svcReq.ForbiddenPredecessors = append(svcReq.ForbiddenPredecessors, id)
		}
	}

	mode, err := h.Defaults.lookupMode(req.LookupMode)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	svcReq.LookupMode = mode

	plan, err := services.PlanDeliveries(r.Context(), svcReq, h.Repo, h.Provider)
	if err != nil {
		writeServiceError(w, r, "plan deliveries", err)
		return
	}

	res := dto.PlanResponse{
		PlanID:           plan.ID.String(),
		Depot:            plan.DepotID,
		Tour:             append([]string(nil), plan.Tour...),
		HasRecharge:      plan.HasRecharge,
		TotalDistanceKm:  plan.TotalDistanceKm,
		PhaseDistanceKm:  plan.PhaseDistanceKm,
		Energy:           toTraceResponse(plan.FullTrace),
		SubTours:         make([]dto.TraceResponse, 0, len(plan.SubTraces)),
		SubToursEnergyWh: plan.SubTotalWh,
	}
	if plan.HasRecharge {
		k := plan.RechargeIndex
		res.RechargeIndex = &k
	}
	for _, st := range plan.SubTraces {
		res.SubTours = append(res.SubTours, toTraceResponse(st))
	}
	if req.IncludeReport {
		var b strings.Builder
		if err := services.RenderReport(&b, plan); err != nil {
			writeServiceError(w, r, "render report", err)
			return
		}
		res.Report = b.String()
	}

	writeJSON(w, r, http.StatusOK, res)
}
