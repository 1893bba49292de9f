// Package split defines sentinel errors for the split subpackage of
// github.com/oceangrid/gridbalance.
package split

import "errors"

// Sentinel errors for apportionment and strip splitting.
var (
	// ErrNoParts indicates a non-positive number of parts was requested.
	ErrNoParts = errors.New("split: part count must be positive")
	// ErrNegativeWork indicates a negative work total.
	ErrNegativeWork = errors.New("split: work total must be non-negative")
	// ErrNonPositiveWeight indicates a weight ≤ 0 in a weighted apportionment.
	ErrNonPositiveWeight = errors.New("split: weights must be positive")
	// ErrNegativeTarget indicates a negative work target.
	ErrNegativeTarget = errors.New("split: work targets must be non-negative")
	// ErrWorkMismatch indicates targets that do not sum to the set's size.
	ErrWorkMismatch = errors.New("split: work targets must sum to the set size")
	// ErrNilSet indicates a nil input set.
	ErrNilSet = errors.New("split: nil input set")
)
