package split

import (
	"sort"

	"github.com/oceangrid/gridbalance/grid"
	"github.com/oceangrid/gridbalance/workset"
)

// Horizontal cuts s into len(targets) contiguous horizontal strips.
// The set's cells are ordered row-major (south to north, west to east
// within a row) and the ordered sequence is cut into consecutive chunks
// of exactly the target sizes, so strip k carries targets[k] work units.
// With reversed set, the scan runs north to south instead, which mirrors
// the strip layout.
//
// Contracts:
//   - s is never mutated; every output set is freshly built.
//   - Output k gets index k; the outputs are disjoint and their union is s.
//   - Σtargets must equal s.Size() (ErrWorkMismatch otherwise).
//
// Complexity: O(n log n) time for the ordering pass, n = s.Size().
func Horizontal(s *workset.Set, targets []int, reversed bool) ([]*workset.Set, error) {
	return cut(s, targets, reversed, func(a, b grid.Coordinate) bool {
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
}

// Vertical is Horizontal's counterpart along the other axis: cells are
// ordered column-major (west to east, south to north within a column),
// producing contiguous vertical strips. Same contracts as Horizontal.
func Vertical(s *workset.Set, targets []int, reversed bool) ([]*workset.Set, error) {
	return cut(s, targets, reversed, func(a, b grid.Coordinate) bool {
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
}

// cut orders the cells by less (flipped when reversed), verifies the
// targets, and slices the ordered sequence into consecutive chunks.
func cut(s *workset.Set, targets []int, reversed bool, less func(a, b grid.Coordinate) bool) ([]*workset.Set, error) {
	if s == nil {
		return nil, ErrNilSet
	}
	sum := 0
	for _, t := range targets {
		if t < 0 {
			return nil, ErrNegativeTarget
		}
		sum += t
	}
	if sum != s.Size() {
		return nil, ErrWorkMismatch
	}

	cells := s.Cells()
	sort.Slice(cells, func(i, j int) bool {
		if reversed {
			return less(cells[j], cells[i])
		}
		return less(cells[i], cells[j])
	})

	out := make([]*workset.Set, len(targets))
	pos := 0
	for k, t := range targets {
		out[k] = workset.New(k, cells[pos:pos+t])
		pos += t
	}
	return out, nil
}
