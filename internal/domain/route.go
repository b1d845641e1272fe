package domain

import "github.com/google/uuid"

// Represents one flown leg of a tour as scored by the consumption model.
// PayloadUnits is the payload on board while flying the leg, i.e. the value
// left after servicing From.
type LegTrace struct {
	From         string
	To           string
	PayloadUnits int
	PayloadKg    float64
	DistanceKm   float64
	FlightHours  float64
	CurrentA     float64
	ChargeAh     float64
	TableMiss    bool
}

// Represents the consumption estimate for a single tour.
type EnergyTrace struct {
	Tour            Tour
	InitialPayload  int
	Payload         []int
	Legs            []LegTrace
	TotalDistanceKm float64
	TotalChargeAh   float64
	TotalEnergyWh   int
}

// Misses returns the number of legs whose payload level had no exact table entry.
func (e *EnergyTrace) Misses() int {
	n := 0
	for _, l := range e.Legs {
		if l.TableMiss {
			n++
		}
	}
	return n
}

// Represents the planned tour for one vehicle together with its energy estimate.
// A RoutePlan is immutable planning data and contains no side effects.
//
// FullTrace evaluates the whole tour with the configured initial payload.
// SubTraces evaluate each recharge sub-tour carrying only the payload it delivers;
// SubTotalWh is their summed energy.
type RoutePlan struct {
	ID              uuid.UUID
	DepotID         string
	Tour            Tour
	RechargeIndex   int
	HasRecharge     bool
	TotalDistanceKm float64
	PhaseDistanceKm [2]float64
	FullTrace       *EnergyTrace
	SubTraces       []*EnergyTrace
	SubTotalWh      int
}
