package search

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/oceangrid/gridbalance/grid"
	"github.com/oceangrid/gridbalance/split"
	"github.com/oceangrid/gridbalance/workset"
)

// Splitter is the hierarchical split driver. It searches, over all work
// target permutations and strip orientations, for the two-level partition
// of a work set with minimal total communication.
//
// A Splitter holds no mutable state between calls to Split; repeated runs
// on the same inputs yield sets with identical membership.
type Splitter struct {
	set        *workset.Set
	neighbours *grid.Neighbours
	subSlices  []int
	opts       Options
}

// solution is the retained best candidate of one search level: the
// partition and the permutation that produced it. The permutation maps
// spatial strip position k to the original target index, which the driver
// needs to look up the requested sub-slice count for each strip.
type solution struct {
	sets []*workset.Set
	perm []int
}

// New creates a Splitter that cuts set into len(subSlices) top-level
// slices, after which slice k (spatially) is cut into the number of
// sub-slices its winning permutation entry requests.
//
// The request is validated up front, before any search:
//   - every sub-slice count must be ≥ 1,
//   - neither the top-level slice count nor the total leaf count may
//     exceed set.Size() (a slice with no work units is never useful).
//
// Violations return ErrInvalidPartition; nothing is partially computed.
func New(set *workset.Set, neighbours *grid.Neighbours, subSlices []int, opts Options) (*Splitter, error) {
	if set == nil {
		return nil, ErrNilSet
	}
	if neighbours == nil {
		return nil, ErrNilNeighbours
	}
	if len(subSlices) == 0 {
		return nil, fmt.Errorf("%w: no slices requested", ErrInvalidPartition)
	}
	leaves := 0
	for _, n := range subSlices {
		if n <= 0 {
			return nil, fmt.Errorf("%w: sub-slice count %d", ErrInvalidPartition, n)
		}
		leaves += n
	}
	if len(subSlices) > set.Size() || leaves > set.Size() {
		return nil, fmt.Errorf("%w: cannot split %d work units into %d slices (%d leaves)",
			ErrInvalidPartition, set.Size(), len(subSlices), leaves)
	}
	cp := make([]int, len(subSlices))
	copy(cp, subSlices)
	return &Splitter{set: set, neighbours: neighbours, subSlices: cp, opts: opts}, nil
}

// Split runs the full two-level search and returns the leaf sets, in
// top-level strip order and leaf strip order within each, re-indexed
// sequentially from 0.
//
// Guarantees:
//   - The leaves partition the input set exactly: sizes sum to
//     set.Size(), no gridpoint is duplicated or dropped.
//   - len(result) == Σ subSlices.
//   - The result is optimal over the explored candidate space (all
//     permutations × four orientations per level), not over all
//     conceivable partitions.
//
// ctx is checked between permutation evaluations; a cancelled context
// aborts the search with ctx.Err(). Any collaborator failure aborts the
// whole call — there is no partial result.
func (sp *Splitter) Split(ctx context.Context) ([]*workset.Set, error) {
	// Top-level targets are weighted by sub-slice count, so a slice that
	// is cut further receives proportionally more work and the leaves
	// come out near-equal.
	targets, err := split.ApportionWeighted(sp.set.Size(), sp.subSlices)
	if err != nil {
		return nil, err
	}
	top, err := sp.findBest(ctx, sp.set, targets)
	if err != nil {
		return nil, err
	}

	result := make([]*workset.Set, 0, sumInts(sp.subSlices))
	for k, sub := range top.sets {
		count := sp.subSlices[top.perm[k]]
		subTargets, err := split.Apportion(sub.Size(), count)
		if err != nil {
			return nil, err
		}
		leaf, err := sp.findBest(ctx, sub, subTargets)
		if err != nil {
			return nil, err
		}
		for _, s := range leaf.sets {
			result = append(result, workset.New(len(result), s.Cells()))
		}
	}
	return result, nil
}

// findBest runs one search level: every permutation of the targets is
// evaluated through the four-way orientation search, and the cheapest
// (permutation, partition) pair wins. Cost ties keep the earliest
// permutation, matching the serial first-seen rule.
func (sp *Splitter) findBest(ctx context.Context, s *workset.Set, targets []int) (solution, error) {
	perms, err := Permutations(len(targets))
	if err != nil {
		return solution{}, err
	}
	if sp.opts.Parallel > 1 {
		return sp.findBestParallel(ctx, s, targets, perms)
	}

	var best solution
	bestCost := 0
	for i, perm := range perms {
		if err = ctx.Err(); err != nil {
			return solution{}, err
		}
		cand, err := sp.bestOrientation(s, reorder(targets, perm), perm, sp.opts.Trace)
		if err != nil {
			return solution{}, err
		}
		if i == 0 || cand.cost < bestCost {
			best = solution{sets: cand.sets, perm: perm}
			bestCost = cand.cost
		}
	}
	return best, nil
}

// findBestParallel evaluates permutations on a bounded worker pool.
// The reduction orders candidates by (cost, permutation index), which is
// exactly the order the serial fold discovers them in, so the selected
// winner is identical regardless of scheduling.
func (sp *Splitter) findBestParallel(ctx context.Context, s *workset.Set, targets []int, perms [][]int) (solution, error) {
	var (
		mu       sync.Mutex
		best     solution
		bestCost int
		bestIdx  = -1
	)

	// gctx only gates spawning: it is cancelled when a worker fails (and,
	// by errgroup's contract, once Wait returns), so the post-Wait
	// cancellation check must consult the parent ctx.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sp.opts.Parallel)
	for i, perm := range perms {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			cand, err := sp.bestOrientation(s, reorder(targets, perm), perm, nil)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			if bestIdx < 0 || cand.cost < bestCost || (cand.cost == bestCost && i < bestIdx) {
				best = solution{sets: cand.sets, perm: perm}
				bestCost = cand.cost
				bestIdx = i
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return solution{}, err
	}
	if err := ctx.Err(); err != nil {
		return solution{}, err
	}
	return best, nil
}

// reorder places targets[perm[j]] at position j, assigning each work
// quantity to a spatial strip position. Fresh slice; inputs untouched.
func reorder(targets, perm []int) []int {
	out := make([]int, len(targets))
	for j := range perm {
		out[j] = targets[perm[j]]
	}
	return out
}

func sumInts(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
