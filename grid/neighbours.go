package grid

// neighbourOffsets lists the four orthogonal directions in a fixed order
// (west, east, south, north). The order is part of the determinism
// contract: Of always reports neighbours in this direction order.
var neighbourOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbours is the adjacency policy over a Grid: a pure function from a
// gridpoint to its active orthogonal neighbours under the grid's boundary
// conditions. It holds no mutable state and is safe for concurrent use.
type Neighbours struct {
	grid *Grid
	opts TopologyOptions
}

// NewNeighbours creates an adjacency policy for g under the given
// boundary conditions.
func NewNeighbours(g *Grid, opts TopologyOptions) *Neighbours {
	return &Neighbours{grid: g, opts: opts}
}

// Of returns the active neighbours of c, applying the east-west wrap and
// the tripolar northern fold where enabled. Out-of-grid neighbours (the
// closed southern boundary, or east/west edges on a non-cyclic grid) and
// land gridpoints are omitted.
//
// Returns ErrOutOfBounds if c lies outside the grid and ErrInactiveCell
// if c is a land gridpoint: asking for the neighbours of a cell that can
// never belong to a work set is a caller bug, surfaced early.
//
// Complexity: O(1) time, O(1) allocations (one result slice).
func (n *Neighbours) Of(c Coordinate) ([]Coordinate, error) {
	if !n.grid.InBounds(c.X, c.Y) {
		return nil, ErrOutOfBounds
	}
	if !n.grid.IsActive(c.X, c.Y) {
		return nil, ErrInactiveCell
	}

	out := make([]Coordinate, 0, 4)
	for _, d := range neighbourOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if nx < 0 || nx >= n.grid.Width {
			if !n.opts.CyclicEastWest {
				continue
			}
			nx = (nx + n.grid.Width) % n.grid.Width
		}
		if ny >= n.grid.Height {
			if !n.opts.TripolarNorth {
				continue
			}
			// Fold: the row above the top row maps onto the top row
			// with the x axis reversed.
			ny = n.grid.Height - 1
			nx = n.grid.Width - 1 - nx
		}
		if ny < 0 {
			continue // closed southern boundary
		}
		if nx == c.X && ny == c.Y {
			continue // degenerate wrap/fold onto the cell itself
		}
		if !n.grid.IsActive(nx, ny) {
			continue
		}
		out = append(out, Coordinate{X: nx, Y: ny})
	}
	return out, nil
}

// Grid returns the grid this policy is defined over.
func (n *Neighbours) Grid() *Grid {
	return n.grid
}
