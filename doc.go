// Package gridbalance computes hierarchical, load-balanced distributions of
// an ocean model's active gridpoints across compute resources, minimizing the
// communication induced by the grid's neighbour topology (east-west
// wraparound and a tripolar fold at the northern boundary).
//
// The repository is organized as small, focused packages:
//
//	grid/     — coordinates, the immutable active-cell grid, topology options
//	            and the Neighbours adjacency policy
//	workset/  — Set: an ordered, immutable collection of gridpoints with a
//	            communication-cost score against a Neighbours policy
//	split/    — work apportionment and the rectangular strip splitter
//	search/   — the combinatorial split-selection search: for a requested
//	            hierarchy of slice counts it enumerates all work-target
//	            permutations and all four strip orientations per level and
//	            keeps the partition with minimal total communication
//	topo/     — topography loading and distribution persistence
//
// The search is an exhaustive, bounded brute-force optimizer: N!·4 candidate
// evaluations per level, two levels deep. Slice counts are expected to be
// small (≲8 per level); the factorial ceiling is a deliberate design choice,
// not an accident.
//
// The gridbalance command (cmd/gridbalance) wraps the library with a CLI for
// computing distributions, printing per-block statistics and inspecting a
// distribution interactively in the terminal.
package gridbalance
