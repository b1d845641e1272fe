package domain

import (
	"errors"
	"fmt"
)

// Tour is an ordered sequence of location ids that starts and ends at the depot.
// It may contain one interior depot occurrence marking a recharge split.
type Tour []string

// RechargeIndex returns the position of the interior depot occurrence, if any.
func (t Tour) RechargeIndex(depotID string) (int, bool) {
	for i := 1; i < len(t)-1; i++ {
		if t[i] == depotID {
			return i, true
		}
	}
	return 0, false
}

// SubTours splits the tour at its recharge point. Both halves start and end at
// the depot. A tour without a recharge point is returned as a single sub-tour.
func (t Tour) SubTours(depotID string) []Tour {
	k, ok := t.RechargeIndex(depotID)
	if !ok {
		return []Tour{append(Tour(nil), t...)}
	}

	first := append(Tour(nil), t[:k+1]...)
	second := append(Tour(nil), t[k:]...)
	return []Tour{first, second}
}

// Validate checks the structural tour invariants against a network: depot at
// both ends, every demand point exactly once and at most one interior depot.
func (t Tour) Validate(n *Network) error {
	if len(t) < 2 {
		return errors.New("validate tour: tour must contain at least the depot twice")
	}

	depot := n.DepotID()
	if t[0] != depot || t[len(t)-1] != depot {
		return fmt.Errorf("validate tour: tour must start and end at depot %q", depot)
	}

	seen := make(map[string]struct{}, len(t))
	interior := 0
	for i, id := range t {
		if _, ok := n.IndexOf(id); !ok {
			return fmt.Errorf("validate tour: position %d: %w %q", i, ErrUnknownLocation, id)
		}

		if id == depot {
			if i != 0 && i != len(t)-1 {
				interior++
			}
			continue
		}

		if _, ok := seen[id]; ok {
			return fmt.Errorf("validate tour: demand point %q visited more than once", id)
		}
		seen[id] = struct{}{}
	}

	if interior > 1 {
		return fmt.Errorf("validate tour: %d interior depot visits, at most one allowed", interior)
	}

	for _, i := range n.DemandPoints() {
		if _, ok := seen[n.ID(i)]; !ok {
			return fmt.Errorf("validate tour: demand point %q not visited", n.ID(i))
		}
	}

	return nil
}

// Legs returns the adjacent (from, to) pairs of the tour.
func (t Tour) Legs() [][2]string {
	if len(t) < 2 {
		return nil
	}
	out := make([][2]string, 0, len(t)-1)
	for i := 0; i+1 < len(t); i++ {
		out = append(out, [2]string{t[i], t[i+1]})
	}
	return out
}
