// Package grid models the 2D gridpoint mask of an ocean simulation and the
// neighbour relation over it. It supports:
//
//   - An immutable active-cell mask built from a topography
//   - Cyclic east-west and tripolar-fold northern boundary conditions
//   - A pure, deterministic Neighbours adjacency policy
//
// Gridpoints with mask value true are "ocean" (they carry work); gridpoints
// with mask value false are "land" and take no part in any distribution.
package grid

// New constructs a Grid from a non-empty, rectangular activity mask.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if the mask has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(active [][]bool) (*Grid, error) {
	if len(active) == 0 || len(active[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(active), len(active[0])
	for _, row := range active {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation.
	mask := make([][]bool, h)
	count := 0
	for y := 0; y < h; y++ {
		mask[y] = make([]bool, w)
		copy(mask[y], active[y])
		for x := 0; x < w; x++ {
			if mask[y][x] {
				count++
			}
		}
	}
	return &Grid{
		Width:       w,
		Height:      h,
		active:      mask,
		activeCount: count,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsActive reports whether (x,y) is an in-bounds ocean gridpoint.
// Complexity: O(1).
func (g *Grid) IsActive(x, y int) bool {
	return g.InBounds(x, y) && g.active[y][x]
}

// ActiveCount returns the number of ocean gridpoints, i.e. the total
// work carried by the grid. Complexity: O(1).
func (g *Grid) ActiveCount() int {
	return g.activeCount
}

// Cells returns all ocean gridpoints in row-major order (south to north,
// west to east within a row). The returned slice is freshly allocated.
// Complexity: O(W×H) time, O(ActiveCount) memory.
func (g *Grid) Cells() []Coordinate {
	out := make([]Coordinate, 0, g.activeCount)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.active[y][x] {
				out = append(out, Coordinate{X: x, Y: y})
			}
		}
	}
	return out
}
