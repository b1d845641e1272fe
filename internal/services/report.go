package services

import (
	"drone-route-service/internal/domain"
	"fmt"
	"io"
	"strings"
)

// RenderReport writes a human-readable summary of a plan: the stops of each
// phase, every segment with its distance, the phase totals and, when traces
// are attached, the energy estimate.
func RenderReport(w io.Writer, plan *domain.RoutePlan) error {
	var b strings.Builder
	tour := plan.Tour
	if len(tour) < 2 {
		return fmt.Errorf("render report: tour has %d stops", len(tour))
	}

	title, phase1 := "Shortest Path Report", "Route:"
	end := len(tour) - 1
	if plan.HasRecharge {
		title, phase1 = "Shortest Path With Recharge Report", "Phase 1 (Before Recharge):"
		end = plan.RechargeIndex
	}

	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")
	b.WriteString(phase1 + "\n")
	fmt.Fprintf(&b, "  Starting point: %s\n", tour[0])
	b.WriteString("  Stops visited:\n")
	for i := 1; i < end; i++ {
		fmt.Fprintf(&b, "    %d. %s\n", i, tour[i])
	}
	if plan.HasRecharge {
		fmt.Fprintf(&b, "  Return to: %s (for recharge)\n\n", tour[end])

		b.WriteString("Phase 2 (After Recharge):\n")
		fmt.Fprintf(&b, "  Starting point: %s\n", tour[end])
		b.WriteString("  Stops visited:\n")
		for i := end + 1; i < len(tour)-1; i++ {
			fmt.Fprintf(&b, "    %d. %s\n", i-end, tour[i])
		}
	}
	fmt.Fprintf(&b, "  Return to: %s\n\n", tour[len(tour)-1])

	b.WriteString("Segment Details:\n")
	var legs []domain.LegTrace
	if plan.FullTrace != nil {
		legs = plan.FullTrace.Legs
	}
	for i, l := range legs {
		marker := ""
		if plan.HasRecharge && i == plan.RechargeIndex {
			marker = " (RECHARGE)"
		}
		fmt.Fprintf(&b, "  %d. %s -> %s: %.2f km%s\n", i+1, l.From, l.To, l.DistanceKm, marker)
	}

	b.WriteString("\nSummary:\n")
	fmt.Fprintf(&b, "  Phase 1 distance: %.2f km\n", plan.PhaseDistanceKm[0])
	fmt.Fprintf(&b, "  Phase 2 distance: %.2f km\n", plan.PhaseDistanceKm[1])
	fmt.Fprintf(&b, "  Total distance: %.2f km\n", plan.TotalDistanceKm)

	if plan.FullTrace != nil {
		b.WriteString("\nEnergy:\n")
		fmt.Fprintf(&b, "  Initial payload: %d units (%.3f kg)\n",
			plan.FullTrace.InitialPayload, domain.PayloadMassKg(plan.FullTrace.InitialPayload))
		fmt.Fprintf(&b, "  Full tour: %.2f Ah, %d Wh\n", plan.FullTrace.TotalChargeAh, plan.FullTrace.TotalEnergyWh)
		for i, st := range plan.SubTraces {
			fmt.Fprintf(&b, "  Sub-tour %d (%d units): %.2f Ah, %d Wh\n", i+1, st.InitialPayload, st.TotalChargeAh, st.TotalEnergyWh)
		}
		if len(plan.SubTraces) > 1 {
			fmt.Fprintf(&b, "  Sub-tours total: %d Wh\n", plan.SubTotalWh)
		}
		if misses := plan.FullTrace.Misses(); misses > 0 {
			fmt.Fprintf(&b, "  Warning: %d leg(s) had no current-draw entry for their payload\n", misses)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
