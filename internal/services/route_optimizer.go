package services

import (
	"context"
	"drone-route-service/internal/adapters/distance"
	"drone-route-service/internal/domain"
	"drone-route-service/internal/platform/obs"
	"drone-route-service/internal/ports"
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

const ctxCheckEvery = 1 << 12

// RechargeConstraints restrict where the single recharge visit may be placed.
//
// At least MinStopsBeforeRecharge demand points are served before returning to
// the depot, and the point served immediately before that return must not be
// one of ForbiddenPredecessors.
type RechargeConstraints struct {
	MinStopsBeforeRecharge int
	ForbiddenPredecessors  []string
}

type OptimizerOptions struct {
	// Workers bounds the number of shards searched concurrently. Zero uses GOMAXPROCS.
	Workers int
	// Distance defaults to the haversine model.
	Distance ports.DistanceProvider
}

// TourResult is the outcome of an exhaustive search.
type TourResult struct {
	Tour       domain.Tour
	DistanceKm float64
	Candidates int64
}

// OptimizeRechargeTour searches every tour with exactly one recharge visit and
// returns the shortest one satisfying the constraints.
//
// Candidates are enumerated split by split, from MinStopsBeforeRecharge up to
// one less than the number of demand points, and within a split in
// lexicographic order of the demand points' input order. Ties keep the first
// candidate in that order regardless of how the search is parallelized.
func OptimizeRechargeTour(
	ctx context.Context,
	n *domain.Network,
	c RechargeConstraints,
	opts OptimizerOptions,
) (res *TourResult, err error) {
	defer obs.Time(ctx, "optimize_recharge_tour")(&err)

	points := n.DemandPoints()
	if c.MinStopsBeforeRecharge < 1 || c.MinStopsBeforeRecharge > len(points) {
		return nil, fmt.Errorf(
			"optimize recharge tour: min stops before recharge must be in [1, %d], got %d: %w",
			len(points), c.MinStopsBeforeRecharge, domain.ErrInvalidConfig,
		)
	}

	forbidden := make([]bool, n.Len())
	for _, id := range c.ForbiddenPredecessors {
		i, ok := n.IndexOf(id)
		if !ok {
			return nil, fmt.Errorf("optimize recharge tour: forbidden predecessor %q: %w", id, domain.ErrInvalidConfig)
		}
		forbidden[i] = true
	}

	var shards []shard
	for split := c.MinStopsBeforeRecharge; split < len(points); split++ {
		for first := range points {
			shards = append(shards, shard{split: split, first: first})
		}
	}

	return search(ctx, "recharge", n, points, shards, forbidden, opts)
}

// OptimizeTour returns the shortest tour visiting every demand point once
// without a recharge visit.
func OptimizeTour(ctx context.Context, n *domain.Network, opts OptimizerOptions) (res *TourResult, err error) {
	defer obs.Time(ctx, "optimize_tour")(&err)

	points := n.DemandPoints()
	shards := make([]shard, len(points))
	for first := range points {
		shards[first] = shard{first: first}
	}

	return search(ctx, "single", n, points, shards, nil, opts)
}

// shard covers every ordering that starts with points[first]. A zero split
// means the tour has no recharge visit.
type shard struct {
	split int
	first int
}

type shardBest struct {
	found      bool
	distance   float64
	ordering   []int
	candidates int64
}

func search(
	ctx context.Context,
	kind string,
	n *domain.Network,
	points []int,
	shards []shard,
	forbidden []bool,
	opts OptimizerOptions,
) (*TourResult, error) {
	start := time.Now()
	defer func() { obs.OptimizerDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds()) }()

	provider := opts.Distance
	if provider == nil {
		provider = distance.Haversine{}
	}
	m := distanceMatrix(n, provider)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]shardBest, len(shards))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sh := range shards {
		g.Go(func() error {
			r, err := searchShard(gctx, m, n.Depot(), points, sh, forbidden)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		outcome := "error"
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			outcome = "canceled"
		}
		obs.OptimizerRuns.WithLabelValues(kind, outcome).Inc()
		return nil, fmt.Errorf("optimize %s tour: %w", kind, err)
	}

	// Reduce in shard order with a strict comparison so the winner is the
	// first optimum in enumeration order.
	var best shardBest
	var bestSplit int
	var candidates int64
	for i, r := range results {
		candidates += r.candidates
		if r.found && (!best.found || r.distance < best.distance) {
			best = r
			bestSplit = shards[i].split
		}
	}
	obs.OptimizerCandidates.WithLabelValues(kind).Add(float64(candidates))

	if !best.found {
		obs.OptimizerRuns.WithLabelValues(kind, "infeasible").Inc()
		return nil, fmt.Errorf("optimize %s tour: %w", kind, domain.ErrInfeasible)
	}
	obs.OptimizerRuns.WithLabelValues(kind, "ok").Inc()

	return &TourResult{
		Tour:       buildTour(n, best.ordering, bestSplit),
		DistanceKm: best.distance,
		Candidates: candidates,
	}, nil
}

func searchShard(
	ctx context.Context,
	m [][]float64,
	depot int,
	points []int,
	sh shard,
	forbidden []bool,
) (shardBest, error) {
	var best shardBest

	// The predecessor of the recharge visit is fixed for the whole shard.
	if sh.split == 1 && forbidden[points[sh.first]] {
		return best, nil
	}

	rest := make([]int, 0, len(points)-1)
	for i, p := range points {
		if i != sh.first {
			rest = append(rest, p)
		}
	}

	ordering := make([]int, len(points))
	ordering[0] = points[sh.first]

	scorer := newTourScorer(m, depot, len(points), sh.split)
	dirty := 0
	best.distance = math.Inf(1)

	perm := newPermutations(rest)
	var iter int64
	for perm.Next() {
		iter++
		if iter%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return shardBest{}, err
			}
		}

		from := perm.Changed() + 1
		copy(ordering[from:], perm.Value()[from-1:])
		if from < dirty {
			dirty = from
		}

		if sh.split > 0 && forbidden[ordering[sh.split-1]] {
			continue
		}

		d := scorer.score(ordering, dirty)
		dirty = len(ordering)
		best.candidates++

		if d < best.distance {
			best.found = true
			best.distance = d
			best.ordering = append(best.ordering[:0], ordering...)
		}
	}

	if err := ctx.Err(); err != nil {
		return shardBest{}, err
	}
	return best, nil
}

// tourScorer keeps running leg sums for a tour laid out as
// depot, ordering[:split], depot, ordering[split:], depot
// (or depot, ordering, depot when split is zero) and recomputes only the
// suffix after the first changed stop. Sums accumulate left to right, so the
// result equals a fresh leg-by-leg total.
type tourScorer struct {
	m     [][]float64
	split int
	seq   []int
	acc   []float64
}

func newTourScorer(m [][]float64, depot, stops, split int) *tourScorer {
	size := stops + 2
	if split > 0 {
		size++
	}
	s := &tourScorer{
		m:     m,
		split: split,
		seq:   make([]int, size),
		acc:   make([]float64, size),
	}
	s.seq[0] = depot
	s.seq[size-1] = depot
	if split > 0 {
		s.seq[split+1] = depot
	}
	return s
}

func (s *tourScorer) at(i int) int {
	if s.split > 0 && i >= s.split {
		return i + 2
	}
	return i + 1
}

func (s *tourScorer) score(ordering []int, from int) float64 {
	for i := from; i < len(ordering); i++ {
		s.seq[s.at(i)] = ordering[i]
	}
	start := len(s.seq)
	if from < len(ordering) {
		start = s.at(from)
	}
	for p := start; p < len(s.seq); p++ {
		s.acc[p] = s.acc[p-1] + s.m[s.seq[p-1]][s.seq[p]]
	}
	return s.acc[len(s.seq)-1]
}

func buildTour(n *domain.Network, ordering []int, split int) domain.Tour {
	depot := n.DepotID()
	tour := make(domain.Tour, 0, len(ordering)+3)
	tour = append(tour, depot)
	for i, p := range ordering {
		if split > 0 && i == split {
			tour = append(tour, depot)
		}
		tour = append(tour, n.ID(p))
	}
	return append(tour, depot)
}

func distanceMatrix(n *domain.Network, provider ports.DistanceProvider) [][]float64 {
	locs := n.Locations()
	if mp, ok := provider.(ports.DistanceMatrixProvider); ok {
		return mp.Matrix(locs)
	}

	m := make([][]float64, len(locs))
	for i := range locs {
		m[i] = make([]float64, len(locs))
		for j := range locs {
			if i != j {
				m[i][j] = provider.DistanceKm(locs[i].Coordinates, locs[j].Coordinates)
			}
		}
	}
	return m
}

// TourDistanceKm sums the leg distances of a tour with the given provider.
func TourDistanceKm(n *domain.Network, provider ports.DistanceProvider, tour domain.Tour) (float64, error) {
	idx, err := n.Resolve(tour)
	if err != nil {
		return 0, fmt.Errorf("tour distance: %w", err)
	}
	total := 0.0
	for i := 0; i+1 < len(idx); i++ {
		total += provider.DistanceKm(n.At(idx[i]).Coordinates, n.At(idx[i+1]).Coordinates)
	}
	return total, nil
}
