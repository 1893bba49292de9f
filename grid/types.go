// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/oceangrid/gridbalance.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input mask has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input mask must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrInactiveCell indicates a coordinate on a land (inactive) gridpoint.
	ErrInactiveCell = errors.New("grid: coordinate is not an active gridpoint")
)

// Coordinate identifies a single gridpoint. X runs west→east, Y runs
// south→north; (0,0) is the south-west corner.
type Coordinate struct {
	X, Y int
}

// TopologyOptions selects the boundary conditions of the grid.
//
// Ocean model grids are typically cyclic in the east-west direction and,
// for tripolar grids, folded onto themselves at the northern boundary:
// the virtual row above the top row maps back onto the top row with the
// x axis reversed. The southern boundary is always closed (land).
type TopologyOptions struct {
	// CyclicEastWest wraps the x axis: x==-1 becomes Width-1 and
	// x==Width becomes 0.
	CyclicEastWest bool
	// TripolarNorth folds the northern boundary: the northern neighbour
	// of (x, Height-1) is (Width-1-x, Height-1).
	TripolarNorth bool
}

// DefaultTopology returns the boundary conditions of a global tripolar
// ocean grid: cyclic east-west, folded north.
func DefaultTopology() TopologyOptions {
	return TopologyOptions{
		CyclicEastWest: true,
		TripolarNorth:  true,
	}
}

// Grid is an immutable rectangular mask of active (ocean) gridpoints.
// Width and Height define dimensions; active[y][x] reports whether the
// gridpoint at (x,y) carries work. Built once via New, never mutated.
type Grid struct {
	Width, Height int

	active      [][]bool
	activeCount int
}
