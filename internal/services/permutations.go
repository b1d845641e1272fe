package services

// permutations walks every ordering of items lazily, in lexicographic order of
// input positions. For items given in input order this is the same order in
// which a position-based permutation generator emits them.
//
// The iterator is single-pass. Value returns a buffer that is overwritten by
// the next call to Next.
type permutations struct {
	items   []int
	pos     []int
	out     []int
	started bool
	done    bool
	changed int
}

func newPermutations(items []int) *permutations {
	p := &permutations{
		items: append([]int(nil), items...),
		pos:   make([]int, len(items)),
		out:   make([]int, len(items)),
	}
	for i := range p.pos {
		p.pos[i] = i
	}
	return p
}

// Next advances to the next ordering and reports whether one exists.
func (p *permutations) Next() bool {
	if p.done {
		return false
	}
	if !p.started {
		p.started = true
		p.changed = 0
		p.fill(0)
		return true
	}

	// Standard next-permutation over the position indices.
	i := len(p.pos) - 2
	for i >= 0 && p.pos[i] > p.pos[i+1] {
		i--
	}
	if i < 0 {
		p.done = true
		return false
	}
	j := len(p.pos) - 1
	for p.pos[j] < p.pos[i] {
		j--
	}
	p.pos[i], p.pos[j] = p.pos[j], p.pos[i]
	for l, r := i+1, len(p.pos)-1; l < r; l, r = l+1, r-1 {
		p.pos[l], p.pos[r] = p.pos[r], p.pos[l]
	}

	p.changed = i
	p.fill(i)
	return true
}

func (p *permutations) fill(from int) {
	for k := from; k < len(p.pos); k++ {
		p.out[k] = p.items[p.pos[k]]
	}
}

// Value returns the current ordering.
func (p *permutations) Value() []int { return p.out }

// Changed returns the first position that differs from the previous ordering.
func (p *permutations) Changed() int { return p.changed }
