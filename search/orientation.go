package search

import (
	"fmt"

	"github.com/oceangrid/gridbalance/split"
	"github.com/oceangrid/gridbalance/workset"
)

// candidate is an ephemeral evaluation record: one partition attempt and
// its total communication cost. Candidates are discarded once a winner
// is chosen.
type candidate struct {
	sets        []*workset.Set
	orientation Orientation
	cost        int
}

// cut performs the strip split for one orientation.
func cut(s *workset.Set, targets []int, o Orientation) ([]*workset.Set, error) {
	switch o {
	case HorizontalAsc:
		return split.Horizontal(s, targets, false)
	case HorizontalDesc:
		return split.Horizontal(s, targets, true)
	case VerticalAsc:
		return split.Vertical(s, targets, false)
	default:
		return split.Vertical(s, targets, true)
	}
}

// totalCommunication sums each set's own communication cost against the
// configured adjacency policy. There is no cross term: the cost model is
// local to each set's boundary.
func (sp *Splitter) totalCommunication(sets []*workset.Set) (int, error) {
	total := 0
	for _, s := range sets {
		c, err := s.Communication(sp.neighbours)
		if err != nil {
			return 0, err
		}
		total += c
	}
	return total, nil
}

// bestOrientation evaluates the four strip layouts for one target ordering
// and returns the cheapest. Ties are broken by evaluation order, so
// HorizontalAsc beats any later equal-cost layout. Pure and deterministic:
// it builds fresh sets per candidate and mutates nothing.
//
// perm is the permutation under test, passed through solely for tracing.
func (sp *Splitter) bestOrientation(s *workset.Set, targets []int, perm []int, trace TraceFunc) (candidate, error) {
	var best candidate
	for i, o := range orientations {
		sets, err := cut(s, targets, o)
		if err != nil {
			return candidate{}, fmt.Errorf("search: %s split: %w", o, err)
		}
		cost, err := sp.totalCommunication(sets)
		if err != nil {
			return candidate{}, err
		}
		if trace != nil {
			trace(TraceEvent{Permutation: perm, Orientation: o, Cost: cost})
		}
		if i == 0 || cost < best.cost {
			best = candidate{sets: sets, orientation: o, cost: cost}
		}
	}
	return best, nil
}
