package search

// Permutations produces every permutation of the index sequence 0..n-1,
// via recursive index-swap generation: at recursion depth start, first
// emit the branch that leaves position start unchanged, then for each
// i > start swap positions start and i into a fresh copy and recurse.
// Because every swap works on a copy, earlier branches are never
// disturbed and no undo step exists.
//
// Contracts:
//   - n ≥ 0 (ErrNegativeLength otherwise).
//   - Exactly n! results, each a bijection over 0..n-1, no duplicates.
//   - n == 0 yields one empty permutation; n == 1 yields [[0]].
//   - Deterministic emission order.
//
// The hierarchical driver structurally depends on the full n! enumeration;
// do not prune. Cost grows factorially — n ≤ ~8 is the practical ceiling
// (8! = 40320 candidate orderings, ×4 orientations each). Larger slice
// counts need a different search, not a bigger machine.
//
// Complexity: O(n·n!) time and memory.
func Permutations(n int) ([][]int, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}
	out := make([][]int, 0, factorial(n))
	permute(index, 0, &out)
	return out, nil
}

// permute recursively emits all orderings of input[start:]. input is
// treated as immutable; swapped branches operate on copies.
func permute(input []int, start int, out *[][]int) {
	if start == len(input) {
		cp := make([]int, len(input))
		copy(cp, input)
		*out = append(*out, cp)
		return
	}
	permute(input, start+1, out)
	for i := start + 1; i < len(input); i++ {
		permute(swapped(input, start, i), start+1, out)
	}
}

// swapped returns a copy of input with positions i and j exchanged.
func swapped(input []int, i, j int) []int {
	cp := make([]int, len(input))
	copy(cp, input)
	cp[i], cp[j] = cp[j], cp[i]
	return cp
}

// factorial computes n! for small n; used only to presize result slices.
func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}
