package domain

import "fmt"

// PayloadUnitMassKg is the measured mass of a single payload unit.
const PayloadUnitMassKg = 0.00573

// Demand maps a demand point id to the number of payload units delivered there.
// The depot may be listed with zero demand or omitted.
type Demand map[string]int

// Of returns the demand of a location, zero for the depot or unlisted ids.
func (d Demand) Of(id string) int { return d[id] }

// Validate checks that every demand point of the network has a non-negative entry.
func (d Demand) Validate(n *Network) error {
	for id, q := range d {
		if q < 0 {
			return fmt.Errorf("validate demand: %w: negative demand %d for %q", ErrInvalidConfig, q, id)
		}
		if id == n.DepotID() && q != 0 {
			return fmt.Errorf("validate demand: %w: depot %q must have zero demand", ErrInvalidConfig, id)
		}
		if _, ok := n.IndexOf(id); !ok {
			return fmt.Errorf("validate demand: %w: demand for %w %q", ErrInvalidConfig, ErrUnknownLocation, id)
		}
	}

	for _, i := range n.DemandPoints() {
		if _, ok := d[n.ID(i)]; !ok {
			return fmt.Errorf("validate demand: %w: missing demand for %q", ErrInvalidConfig, n.ID(i))
		}
	}

	return nil
}

// PayloadMassKg converts payload units to kilograms.
func PayloadMassKg(units int) float64 {
	return float64(units) * PayloadUnitMassKg
}
