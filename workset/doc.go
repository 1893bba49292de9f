// Package workset provides Set, an ordered, indexed, immutable collection of
// gridpoints representing one partition of an ocean grid's work.
//
// A Set knows its size (one work unit per gridpoint), can score its own
// communication load against a grid.Neighbours adjacency policy, and can
// enumerate its halo: the boundary-adjacent gridpoints just outside the set.
// Sets are never mutated after construction; splitting a set always produces
// fresh disjoint sets.
package workset
