package split

// Apportion divides total work units over parts slices as evenly as
// possible: every slice receives ⌊total/parts⌋ units and the first
// total mod parts slices receive one extra.
//
// Contracts:
//   - total ≥ 0, parts ≥ 1.
//   - The result always sums to total (sum-preserving).
//   - Deterministic: identical inputs yield identical targets.
//
// Complexity: O(parts) time and memory.
func Apportion(total, parts int) ([]int, error) {
	if total < 0 {
		return nil, ErrNegativeWork
	}
	if parts <= 0 {
		return nil, ErrNoParts
	}
	base, extra := total/parts, total%parts
	out := make([]int, parts)
	for i := range out {
		out[i] = base
		if i < extra {
			out[i]++
		}
	}
	return out, nil
}

// ApportionWeighted divides total work units over len(weights) slices in
// proportion to the weights: slice i receives ⌊total·weights[i]/Σweights⌋
// units, and the remainder is distributed one unit at a time to the first
// slices in order.
//
// This is how a hierarchy assigns top-level work: a slice that will later
// be cut into more sub-slices is given proportionally more work, so the
// leaves come out near-equal.
//
// Contracts:
//   - total ≥ 0, len(weights) ≥ 1, every weight ≥ 1.
//   - The result always sums to total (sum-preserving).
//   - If total ≥ Σweights, every target is ≥ its weight.
//
// Complexity: O(len(weights)) time and memory.
func ApportionWeighted(total int, weights []int) ([]int, error) {
	if total < 0 {
		return nil, ErrNegativeWork
	}
	if len(weights) == 0 {
		return nil, ErrNoParts
	}
	sum := 0
	for _, w := range weights {
		if w <= 0 {
			return nil, ErrNonPositiveWeight
		}
		sum += w
	}
	out := make([]int, len(weights))
	assigned := 0
	for i, w := range weights {
		out[i] = total * w / sum
		assigned += out[i]
	}
	for i := 0; assigned < total; i++ {
		out[i%len(out)]++
		assigned++
	}
	return out, nil
}
