// Package search defines public types, options, and sentinel errors for
// the search subpackage of github.com/oceangrid/gridbalance.
package search

import "errors"

// Sentinel errors for the split-selection search.
var (
	// ErrInvalidPartition indicates an unsatisfiable split request:
	// a non-positive sub-slice count, or more requested slices than the
	// set has work units. Detected at construction, before any search.
	ErrInvalidPartition = errors.New("search: invalid partition request")
	// ErrNegativeLength indicates a negative permutation length.
	ErrNegativeLength = errors.New("search: permutation length must be non-negative")
	// ErrNilSet indicates a nil input work set.
	ErrNilSet = errors.New("search: nil work set")
	// ErrNilNeighbours indicates a nil adjacency policy.
	ErrNilNeighbours = errors.New("search: nil neighbours policy")
)

// Orientation identifies one of the four candidate strip layouts evaluated
// per permutation. The declaration order is the evaluation order; cost ties
// are broken in favour of the earliest orientation.
type Orientation int

const (
	// HorizontalAsc cuts horizontal strips scanning south to north.
	HorizontalAsc Orientation = iota
	// HorizontalDesc cuts horizontal strips scanning north to south.
	HorizontalDesc
	// VerticalAsc cuts vertical strips scanning west to east.
	VerticalAsc
	// VerticalDesc cuts vertical strips scanning east to west.
	VerticalDesc
)

// orientations is the fixed evaluation order; first-seen wins on ties.
var orientations = [4]Orientation{HorizontalAsc, HorizontalDesc, VerticalAsc, VerticalDesc}

// String returns a short human-readable orientation name.
func (o Orientation) String() string {
	switch o {
	case HorizontalAsc:
		return "horizontal"
	case HorizontalDesc:
		return "horizontal-reversed"
	case VerticalAsc:
		return "vertical"
	case VerticalDesc:
		return "vertical-reversed"
	default:
		return "unknown"
	}
}

// TraceEvent describes one candidate evaluation: the permutation under
// test, the strip orientation, and the total communication cost of the
// resulting partition. Emitted only when a TraceFunc is configured.
type TraceEvent struct {
	Permutation []int
	Orientation Orientation
	Cost        int
}

// TraceFunc receives per-candidate diagnostics. It must not retain the
// Permutation slice past the call. Tracing is purely observational and
// never required for correctness.
type TraceFunc func(TraceEvent)

// Options tunes a Splitter. The zero value is valid: serial search, no
// tracing.
type Options struct {
	// Parallel bounds the number of concurrently evaluated permutations.
	// Values ≤ 1 select the serial path. The winner is identical either
	// way: the reduction orders candidates by (cost, permutation index).
	Parallel int

	// Trace, when non-nil, receives one event per evaluated candidate.
	// Tracing is only invoked from the serial path; Parallel > 1 searches
	// run untraced to keep event order deterministic.
	Trace TraceFunc
}

// DefaultOptions returns the default search configuration: serial,
// untraced.
func DefaultOptions() Options {
	return Options{}
}
