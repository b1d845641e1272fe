package domain

import (
	"fmt"
	"sort"
)

// LookupMode selects how a CurrentDrawTable answers payload levels it has no
// exact entry for.
type LookupMode int

const (
	// LookupExact returns zero draw for any key not in the table. This matches the
	// measured reference behaviour and silently understates energy on a miss.
	LookupExact LookupMode = iota
	// LookupInterpolate interpolates linearly between the nearest tabulated keys
	// and clamps to the end values outside the table domain.
	LookupInterpolate
	// LookupStrict reports ErrOutOfTable for any key without an exact entry.
	LookupStrict
)

func (m LookupMode) String() string {
	switch m {
	case LookupExact:
		return "exact"
	case LookupInterpolate:
		return "interpolate"
	case LookupStrict:
		return "strict"
	default:
		return fmt.Sprintf("LookupMode(%d)", int(m))
	}
}

// ParseLookupMode maps a configuration string to a LookupMode.
func ParseLookupMode(s string) (LookupMode, error) {
	switch s {
	case "", "exact":
		return LookupExact, nil
	case "interpolate":
		return LookupInterpolate, nil
	case "strict":
		return LookupStrict, nil
	default:
		return LookupExact, fmt.Errorf("%w: unknown lookup mode %q", ErrInvalidConfig, s)
	}
}

// CurrentDrawTable is an immutable mapping from remaining payload units to the
// current drawn by the vehicle (amperes), as measured on the bench.
type CurrentDrawTable struct {
	amps map[int]float64
	keys []int
	mode LookupMode
}

// NewCurrentDrawTable copies entries into a new table using the exact lookup mode.
func NewCurrentDrawTable(entries map[int]float64) CurrentDrawTable {
	amps := make(map[int]float64, len(entries))
	keys := make([]int, 0, len(entries))
	for k, v := range entries {
		amps[k] = v
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return CurrentDrawTable{amps: amps, keys: keys}
}

// WithMode returns a copy of the table answering misses with mode.
func (t CurrentDrawTable) WithMode(mode LookupMode) CurrentDrawTable {
	t.mode = mode
	return t
}

// Mode returns the table's lookup mode.
func (t CurrentDrawTable) Mode() LookupMode { return t.mode }

// Len returns the number of tabulated keys.
func (t CurrentDrawTable) Len() int { return len(t.keys) }

// Entries returns a copy of the tabulated values.
func (t CurrentDrawTable) Entries() map[int]float64 {
	out := make(map[int]float64, len(t.amps))
	for k, v := range t.amps {
		out[k] = v
	}
	return out
}

// Lookup returns the current draw for a payload level and whether the key was
// tabulated. Misses follow the table's mode; only LookupStrict returns an error.
func (t CurrentDrawTable) Lookup(units int) (float64, bool, error) {
	if v, ok := t.amps[units]; ok {
		return v, true, nil
	}

	switch t.mode {
	case LookupInterpolate:
		return t.interpolate(units), false, nil
	case LookupStrict:
		return 0, false, fmt.Errorf("lookup current draw: %w: %d units", ErrOutOfTable, units)
	default:
		return 0, false, nil
	}
}

func (t CurrentDrawTable) interpolate(units int) float64 {
	if len(t.keys) == 0 {
		return 0
	}

	i := sort.SearchInts(t.keys, units)
	if i == 0 {
		return t.amps[t.keys[0]]
	}
	if i == len(t.keys) {
		return t.amps[t.keys[len(t.keys)-1]]
	}

	lo, hi := t.keys[i-1], t.keys[i]
	frac := float64(units-lo) / float64(hi-lo)
	return t.amps[lo] + frac*(t.amps[hi]-t.amps[lo])
}
