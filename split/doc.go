// Package split provides the primitive partitioning routines the search
// builds on: deterministic apportionment of a work total into per-slice
// targets, and the rectangular strip splitter that cuts a work set into
// contiguous strips along one grid axis.
//
// The splitter is order-sensitive by design: the k-th strip, spatially,
// receives exactly targets[k] work units. Exploring different orderings of
// the targets (and the four scan orientations) is the search package's job;
// this package only performs one requested cut, exactly and reproducibly.
package split
