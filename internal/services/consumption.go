package services

import (
	"drone-route-service/internal/adapters/distance"
	"drone-route-service/internal/domain"
	"drone-route-service/internal/ports"
	"fmt"
	"math"
	"strconv"
)

const (
	// DefaultFlightVelocityKmh is the constant ground speed assumed for every leg.
	DefaultFlightVelocityKmh = 7.0
	// NominalVoltageV converts accumulated charge into energy.
	NominalVoltageV = 14.8
)

// ConsumptionModel scores tours against a current-draw table.
//
// Each leg is flown at a constant velocity with the payload left after servicing
// its origin. The running charge total is rounded to two decimals after every
// leg and the final energy is rounded half-to-even to whole watt-hours.
type ConsumptionModel struct {
	Table             domain.CurrentDrawTable
	FlightVelocityKmh float64
	VoltageV          float64
	Distance          ports.DistanceProvider
}

// NewConsumptionModel returns a model with the default velocity, voltage and
// the haversine distance model.
func NewConsumptionModel(table domain.CurrentDrawTable) ConsumptionModel {
	return ConsumptionModel{
		Table:             table,
		FlightVelocityKmh: DefaultFlightVelocityKmh,
		VoltageV:          NominalVoltageV,
		Distance:          distance.Haversine{},
	}
}

func (m ConsumptionModel) validate() error {
	if !(m.FlightVelocityKmh > 0) || math.IsInf(m.FlightVelocityKmh, 0) {
		return fmt.Errorf("flight velocity must be positive, got %v: %w", m.FlightVelocityKmh, domain.ErrInvalidConfig)
	}
	if !(m.VoltageV > 0) || math.IsInf(m.VoltageV, 0) {
		return fmt.Errorf("voltage must be positive, got %v: %w", m.VoltageV, domain.ErrInvalidConfig)
	}
	return nil
}

func (m ConsumptionModel) provider() ports.DistanceProvider {
	if m.Distance == nil {
		return distance.Haversine{}
	}
	return m.Distance
}

// EvaluateTour estimates the energy needed to fly the tour starting with the
// given payload. Every id in the tour must belong to the network.
func (m ConsumptionModel) EvaluateTour(
	n *domain.Network,
	demand domain.Demand,
	tour domain.Tour,
	initial int,
) (*domain.EnergyTrace, error) {
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("evaluate tour: %w", err)
	}
	idx, err := n.Resolve(tour)
	if err != nil {
		return nil, fmt.Errorf("evaluate tour: %w", err)
	}

	provider := m.provider()
	payload := TracePayload(tour, n.DepotID(), demand, initial)

	trace := &domain.EnergyTrace{
		Tour:           append(domain.Tour(nil), tour...),
		InitialPayload: initial,
		Payload:        payload,
		Legs:           make([]domain.LegTrace, 0, max(len(tour)-1, 0)),
	}

	totalAh := 0.0
	for i := 0; i+1 < len(idx); i++ {
		units := payload[i]
		amps, hit, err := m.Table.Lookup(units)
		if err != nil {
			return nil, fmt.Errorf("evaluate tour: leg %d (%s -> %s): %w", i, tour[i], tour[i+1], err)
		}

		km := provider.DistanceKm(n.At(idx[i]).Coordinates, n.At(idx[i+1]).Coordinates)
		hours := km / m.FlightVelocityKmh
		ah := amps * hours
		totalAh = roundHundredths(totalAh + ah)

		trace.Legs = append(trace.Legs, domain.LegTrace{
			From:         tour[i],
			To:           tour[i+1],
			PayloadUnits: units,
			PayloadKg:    domain.PayloadMassKg(units),
			DistanceKm:   km,
			FlightHours:  hours,
			CurrentA:     amps,
			ChargeAh:     ah,
			TableMiss:    !hit,
		})
		trace.TotalDistanceKm += km
	}

	trace.TotalChargeAh = totalAh
	trace.TotalEnergyWh = int(math.RoundToEven(totalAh * m.VoltageV))

	return trace, nil
}

// EvaluateSubroutes scores each sub-tour as a standalone flight that starts
// with exactly the payload it delivers, and returns the summed energy.
func (m ConsumptionModel) EvaluateSubroutes(
	n *domain.Network,
	demand domain.Demand,
	subtours []domain.Tour,
) (int, []*domain.EnergyTrace, error) {
	traces := make([]*domain.EnergyTrace, 0, len(subtours))
	total := 0
	for i, st := range subtours {
		tr, err := m.EvaluateTour(n, demand, st, RoutePayload(st, n.DepotID(), demand))
		if err != nil {
			return 0, nil, fmt.Errorf("evaluate subroutes: subroute %d: %w", i, err)
		}
		traces = append(traces, tr)
		total += tr.TotalEnergyWh
	}
	return total, traces, nil
}

// roundHundredths rounds to two decimals, resolving exact binary halves to even.
// Formatting goes through the exact decimal expansion of x, so values such as
// 2.675 (stored just below the half) round down.
func roundHundredths(x float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	if err != nil {
		return x
	}
	return v
}
