package workset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/oceangrid/gridbalance/grid"
)

// ErrNilNeighbours indicates a nil adjacency policy was supplied.
var ErrNilNeighbours = errors.New("workset: nil neighbours policy")

// Set is an ordered, immutable collection of gridpoints with a stable
// numeric identity. The zero value is not usable; construct via New.
type Set struct {
	index   int
	cells   []grid.Coordinate
	members map[grid.Coordinate]struct{}
}

// New creates a Set with the given identity from cells. The slice is
// copied, so the caller remains free to reuse it. Duplicate coordinates
// are kept in the cell order but counted once for membership.
// Complexity: O(len(cells)) time and memory.
func New(index int, cells []grid.Coordinate) *Set {
	s := &Set{
		index:   index,
		cells:   make([]grid.Coordinate, len(cells)),
		members: make(map[grid.Coordinate]struct{}, len(cells)),
	}
	copy(s.cells, cells)
	for _, c := range s.cells {
		s.members[c] = struct{}{}
	}
	return s
}

// Index returns the set's stable numeric identity.
func (s *Set) Index() int {
	return s.index
}

// Size returns the number of gridpoints, i.e. the work carried by the set.
func (s *Set) Size() int {
	return len(s.cells)
}

// Cells returns the set's gridpoints in their stored order.
// The returned slice is freshly allocated.
func (s *Set) Cells() []grid.Coordinate {
	out := make([]grid.Coordinate, len(s.cells))
	copy(out, s.cells)
	return out
}

// Contains reports whether c belongs to the set. Complexity: O(1).
func (s *Set) Contains(c grid.Coordinate) bool {
	_, ok := s.members[c]
	return ok
}

// Communication scores the set's communication load against the adjacency
// policy: the number of (cell, neighbour) pairs whose neighbour lies
// outside the set. Every such pair is one boundary exchange per halo
// update, so the score is a direct proxy for message volume.
//
// The result is ≥ 0 and deterministic for a given set and policy.
// Complexity: O(Size) time.
func (s *Set) Communication(n *grid.Neighbours) (int, error) {
	if n == nil {
		return 0, ErrNilNeighbours
	}
	total := 0
	for _, c := range s.cells {
		nbs, err := n.Of(c)
		if err != nil {
			return 0, fmt.Errorf("workset: neighbours of (%d,%d): %w", c.X, c.Y, err)
		}
		for _, nb := range nbs {
			if !s.Contains(nb) {
				total++
			}
		}
	}
	return total, nil
}

// Halo returns the boundary-adjacent gridpoints: active neighbours of the
// set's cells that are not themselves members. The result is deduplicated
// and sorted by (Y, X) so repeated calls yield identical slices.
// Complexity: O(Size log Size) time.
func (s *Set) Halo(n *grid.Neighbours) ([]grid.Coordinate, error) {
	if n == nil {
		return nil, ErrNilNeighbours
	}
	seen := make(map[grid.Coordinate]struct{})
	for _, c := range s.cells {
		nbs, err := n.Of(c)
		if err != nil {
			return nil, fmt.Errorf("workset: neighbours of (%d,%d): %w", c.X, c.Y, err)
		}
		for _, nb := range nbs {
			if !s.Contains(nb) {
				seen[nb] = struct{}{}
			}
		}
	}
	out := make([]grid.Coordinate, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out, nil
}
