// Package search implements the combinatorial split-selection search at the
// heart of gridbalance.
//
// Given a work set, an adjacency policy and a two-level slice request (how
// many top-level slices, and how many sub-slices each of them is later cut
// into), the Splitter enumerates every assignment of work targets to strip
// positions (all N! permutations) combined with every strip orientation
// (horizontal/vertical, each in both scan directions) and keeps the
// partition whose summed communication cost is minimal. Each top-level
// winner is then re-searched the same way to produce its leaf sets.
//
// The search is exhaustive and bounded: N!·4 candidate evaluations per
// level. It is exact over the explored space — axis-aligned contiguous
// strip cuts — not over all conceivable partitions. Slice counts beyond
// ~8 per level are impractical; see Permutations.
//
// Every candidate evaluation is independent and side-effect free, so the
// permutation loop optionally fans out over a bounded worker pool
// (Options.Parallel) with a deterministic reduction: parallel runs always
// select the same winner as serial runs.
package search
