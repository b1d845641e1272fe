package services

import (
	"context"
	"drone-route-service/internal/domain"
	"drone-route-service/internal/platform/obs"
	"drone-route-service/internal/ports"
	"fmt"

	"github.com/google/uuid"
)

type PlanDeliveriesRequest struct {
	// InitialPayload is loaded at the depot before take-off. Nil means the
	// total demand of the planned tour.
	InitialPayload    *int
	FlightVelocityKmh float64
	LookupMode        domain.LookupMode

	// Recharge enables the single recharge visit. When false the shortest
	// plain tour is planned and the constraints below are ignored.
	Recharge               bool
	MinStopsBeforeRecharge int
	ForbiddenPredecessors  []string

	Workers int
}

// PlanDeliveries loads the scenario, searches the shortest admissible tour and
// attaches its energy estimate.
func PlanDeliveries(
	ctx context.Context,
	req PlanDeliveriesRequest,
	repo ports.ScenarioRepository,
	provider ports.DistanceProvider,
) (plan *domain.RoutePlan, err error) {
	defer obs.Time(ctx, "plan_deliveries")(&err)

	if req.InitialPayload != nil && *req.InitialPayload < 0 {
		return nil, fmt.Errorf("plan deliveries: initial payload must be >= 0, got %d: %w", *req.InitialPayload, domain.ErrInvalidConfig)
	}

	sc, err := repo.LoadScenario(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan deliveries: load scenario: %w", err)
	}
	n, err := sc.Network()
	if err != nil {
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}

	model := NewConsumptionModel(sc.Table().WithMode(req.LookupMode))
	if req.FlightVelocityKmh != 0 {
		model.FlightVelocityKmh = req.FlightVelocityKmh
	}
	if provider != nil {
		model.Distance = provider
	}
	if err := model.validate(); err != nil {
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}

	opts := OptimizerOptions{Workers: req.Workers, Distance: model.Distance}

	var res *TourResult
	if req.Recharge {
		res, err = OptimizeRechargeTour(ctx, n, RechargeConstraints{
			MinStopsBeforeRecharge: req.MinStopsBeforeRecharge,
			ForbiddenPredecessors:  req.ForbiddenPredecessors,
		}, opts)
	} else {
		res, err = OptimizeTour(ctx, n, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}

	initial := RoutePayload(res.Tour, n.DepotID(), sc.Demand)
	if req.InitialPayload != nil {
		initial = *req.InitialPayload
	}
	plan, err = BuildRoutePlan(n, sc.Demand, model, res.Tour, initial)
	if err != nil {
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}
	obs.EnergyEstimateWh.Observe(float64(plan.FullTrace.TotalEnergyWh))

	return plan, nil
}

// BuildRoutePlan evaluates a known tour: the full trace with the given initial
// payload, the per-sub-tour traces and the phase distances.
func BuildRoutePlan(
	n *domain.Network,
	demand domain.Demand,
	model ConsumptionModel,
	tour domain.Tour,
	initial int,
) (*domain.RoutePlan, error) {
	depot := n.DepotID()

	full, err := model.EvaluateTour(n, demand, tour, initial)
	if err != nil {
		return nil, fmt.Errorf("build route plan: %w", err)
	}
	subWh, subs, err := model.EvaluateSubroutes(n, demand, tour.SubTours(depot))
	if err != nil {
		return nil, fmt.Errorf("build route plan: %w", err)
	}

	k, hasRecharge := tour.RechargeIndex(depot)
	plan := &domain.RoutePlan{
		ID:              uuid.New(),
		DepotID:         depot,
		Tour:            append(domain.Tour(nil), tour...),
		RechargeIndex:   k,
		HasRecharge:     hasRecharge,
		TotalDistanceKm: full.TotalDistanceKm,
		FullTrace:       full,
		SubTraces:       subs,
		SubTotalWh:      subWh,
	}
	plan.PhaseDistanceKm = PhaseDistances(full.Legs, k, hasRecharge)

	return plan, nil
}

// PhaseDistances splits leg distances around the recharge visit. The leg that
// leaves the depot after recharging is counted in the first phase.
func PhaseDistances(legs []domain.LegTrace, rechargeIndex int, hasRecharge bool) [2]float64 {
	var out [2]float64
	for i, l := range legs {
		if !hasRecharge || i <= rechargeIndex {
			out[0] += l.DistanceKm
		} else {
			out[1] += l.DistanceKm
		}
	}
	return out
}
