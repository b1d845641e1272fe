package services

import "drone-route-service/internal/domain"

// TracePayload returns the payload on board after each position of the tour.
//
// Position 0 carries the initial quantity. Arriving at a demand point removes
// its demand; the depot leaves the value unchanged. Values are not clamped, so
// an understated initial quantity shows up as a negative remainder.
func TracePayload(tour domain.Tour, depotID string, demand domain.Demand, initial int) []int {
	if len(tour) == 0 {
		return []int{}
	}

	out := make([]int, len(tour))
	out[0] = initial
	for i := 1; i < len(tour); i++ {
		out[i] = out[i-1]
		if tour[i] != depotID {
			out[i] -= demand.Of(tour[i])
		}
	}

	return out
}

// RoutePayload sums the demand of every demand point visited by the tour, i.e.
// the payload a vehicle must carry to serve it as a standalone flight.
func RoutePayload(tour domain.Tour, depotID string, demand domain.Demand) int {
	total := 0
	for _, id := range tour {
		if id == depotID {
			continue
		}
		total += demand.Of(id)
	}
	return total
}
