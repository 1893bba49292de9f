package search_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oceangrid/gridbalance/grid"
	"github.com/oceangrid/gridbalance/search"
	"github.com/oceangrid/gridbalance/split"
	"github.com/oceangrid/gridbalance/workset"
)

// flatGrid builds a w×h grid with every gridpoint active and a closed
// (non-wrapping) topology, keeping costs easy to compute by hand.
func flatGrid(t *testing.T, w, h int) (*grid.Grid, *grid.Neighbours) {
	t.Helper()
	mask := make([][]bool, h)
	for y := range mask {
		mask[y] = make([]bool, w)
		for x := range mask[y] {
			mask[y][x] = true
		}
	}
	g, err := grid.New(mask)
	require.NoError(t, err)
	return g, grid.NewNeighbours(g, grid.TopologyOptions{})
}

// membership flattens a partition to a sorted list of per-set sorted cells,
// for comparing structure rather than indices.
func membership(sets []*workset.Set) [][]grid.Coordinate {
	out := make([][]grid.Coordinate, len(sets))
	for i, s := range sets {
		cells := s.Cells()
		sort.Slice(cells, func(a, b int) bool {
			if cells[a].Y != cells[b].Y {
				return cells[a].Y < cells[b].Y
			}
			return cells[a].X < cells[b].X
		})
		out[i] = cells
	}
	return out
}

func totalCost(t *testing.T, n *grid.Neighbours, sets []*workset.Set) int {
	t.Helper()
	total := 0
	for _, s := range sets {
		c, err := s.Communication(n)
		require.NoError(t, err)
		total += c
	}
	return total
}

func assertPartitions(t *testing.T, parent *workset.Set, leaves []*workset.Set) {
	t.Helper()
	seen := make(map[grid.Coordinate]struct{})
	total := 0
	for _, s := range leaves {
		total += s.Size()
		for _, c := range s.Cells() {
			_, dup := seen[c]
			require.False(t, dup, "cell %v assigned twice", c)
			require.True(t, parent.Contains(c), "cell %v not in the input set", c)
			seen[c] = struct{}{}
		}
	}
	require.Equal(t, parent.Size(), total, "work must be conserved")
}

// TestSplit_FourQuadrants is the canonical scenario: a fully active 4×4
// grid split as [2,2] must yield four leaf blocks of four units each, and
// the searched partition must beat a naive row-major 4-way split.
func TestSplit_FourQuadrants(t *testing.T) {
	g, n := flatGrid(t, 4, 4)
	set := workset.New(0, g.Cells())

	sp, err := search.New(set, n, []int{2, 2}, search.DefaultOptions())
	require.NoError(t, err)
	leaves, err := sp.Split(context.Background())
	require.NoError(t, err)

	require.Len(t, leaves, 4)
	for i, s := range leaves {
		require.Equal(t, i, s.Index(), "leaves must be re-indexed sequentially")
		require.Equal(t, 4, s.Size())
	}
	assertPartitions(t, set, leaves)

	// Each leaf is one 2×2 quadrant: the minimal-communication layout.
	for _, s := range leaves {
		cells := s.Cells()
		minX, minY := cells[0].X, cells[0].Y
		for _, c := range cells {
			if c.X < minX {
				minX = c.X
			}
			if c.Y < minY {
				minY = c.Y
			}
		}
		require.Zero(t, minX%2)
		require.Zero(t, minY%2)
		for _, c := range cells {
			require.LessOrEqual(t, c.X-minX, 1)
			require.LessOrEqual(t, c.Y-minY, 1)
		}
	}

	// Searched cost ≤ naive row-major 4-way split cost.
	naive, err := split.Horizontal(set, []int{4, 4, 4, 4}, false)
	require.NoError(t, err)
	require.LessOrEqual(t, totalCost(t, n, leaves), totalCost(t, n, naive))
}

// TestSplit_Deterministic re-runs the same request and expects identical
// membership, not merely identical costs.
func TestSplit_Deterministic(t *testing.T) {
	mask := [][]bool{
		{true, true, true, true, true, false},
		{true, true, false, true, true, true},
		{true, true, true, true, false, true},
		{false, true, true, true, true, true},
		{true, true, true, true, true, true},
	}
	g, err := grid.New(mask)
	require.NoError(t, err)
	n := grid.NewNeighbours(g, grid.DefaultTopology())
	set := workset.New(0, g.Cells())

	first := runSplit(t, set, n, []int{3, 2}, search.DefaultOptions())
	second := runSplit(t, set, n, []int{3, 2}, search.DefaultOptions())
	require.Equal(t, membership(first), membership(second))
}

// TestSplit_ParallelCompletes checks that a concurrent search on a
// healthy, never-cancelled context finishes cleanly: worker-pool
// bookkeeping must not leak a cancellation into the result.
func TestSplit_ParallelCompletes(t *testing.T) {
	g, n := flatGrid(t, 6, 6)
	set := workset.New(0, g.Cells())

	sp, err := search.New(set, n, []int{2, 3}, search.Options{Parallel: 4})
	require.NoError(t, err)
	leaves, err := sp.Split(context.Background())
	require.NoError(t, err)
	require.Len(t, leaves, 5)
	assertPartitions(t, set, leaves)
}

// TestSplit_ParallelMatchesSerial checks that the parallel reduction picks
// the same winner as the serial first-seen fold.
func TestSplit_ParallelMatchesSerial(t *testing.T) {
	g, n := flatGrid(t, 6, 6)
	set := workset.New(0, g.Cells())

	serial := runSplit(t, set, n, []int{2, 3}, search.Options{})
	parallel := runSplit(t, set, n, []int{2, 3}, search.Options{Parallel: 4})
	require.Equal(t, membership(serial), membership(parallel))
}

// TestSplit_ParallelCancellation checks that cancelling the caller's
// context still aborts a concurrent search.
func TestSplit_ParallelCancellation(t *testing.T) {
	g, n := flatGrid(t, 8, 8)
	set := workset.New(0, g.Cells())

	sp, err := search.New(set, n, []int{2, 2, 2, 2}, search.Options{Parallel: 2})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sp.Split(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

// TestSplit_ZeroCommunication uses a checkerboard of isolated cells: every
// candidate ties at cost zero, and the first-seen tie-break must still
// produce a valid full partition.
func TestSplit_ZeroCommunication(t *testing.T) {
	mask := make([][]bool, 4)
	for y := range mask {
		mask[y] = make([]bool, 4)
		for x := range mask[y] {
			mask[y][x] = (x+y)%2 == 0
		}
	}
	g, err := grid.New(mask)
	require.NoError(t, err)
	n := grid.NewNeighbours(g, grid.TopologyOptions{})
	set := workset.New(0, g.Cells())
	require.Equal(t, 8, set.Size())

	leaves := runSplit(t, set, n, []int{2, 2}, search.DefaultOptions())
	require.Len(t, leaves, 4)
	assertPartitions(t, set, leaves)
	require.Zero(t, totalCost(t, n, leaves))
}

// TestSplit_LeafCount checks len(result) == Σ subSlices for a mixed request.
func TestSplit_LeafCount(t *testing.T) {
	g, n := flatGrid(t, 6, 6)
	set := workset.New(0, g.Cells())

	leaves := runSplit(t, set, n, []int{1, 3, 2}, search.DefaultOptions())
	require.Len(t, leaves, 6)
	assertPartitions(t, set, leaves)
}

func TestNew_InvalidRequests(t *testing.T) {
	g, n := flatGrid(t, 3, 1)
	set := workset.New(0, g.Cells()) // 3 work units

	cases := []struct {
		name      string
		subSlices []int
	}{
		{"MoreSlicesThanWork", []int{1, 1, 1, 1, 1}},
		{"MoreLeavesThanWork", []int{2, 2}},
		{"ZeroSubSlices", []int{2, 0}},
		{"NegativeSubSlices", []int{-1}},
		{"EmptyRequest", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := search.New(set, n, tc.subSlices, search.DefaultOptions())
			require.ErrorIs(t, err, search.ErrInvalidPartition)
		})
	}
}

func TestNew_NilCollaborators(t *testing.T) {
	g, n := flatGrid(t, 2, 2)
	set := workset.New(0, g.Cells())

	_, err := search.New(nil, n, []int{1}, search.DefaultOptions())
	require.ErrorIs(t, err, search.ErrNilSet)
	_, err = search.New(set, nil, []int{1}, search.DefaultOptions())
	require.ErrorIs(t, err, search.ErrNilNeighbours)
}

func TestSplit_Cancellation(t *testing.T) {
	g, n := flatGrid(t, 8, 8)
	set := workset.New(0, g.Cells())

	sp, err := search.New(set, n, []int{2, 2, 2, 2}, search.DefaultOptions())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sp.Split(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

// TestSplit_Trace checks that tracing reports one event per evaluated
// candidate: N!·4 at the top level plus each sub-level's share.
func TestSplit_Trace(t *testing.T) {
	g, n := flatGrid(t, 4, 4)
	set := workset.New(0, g.Cells())

	events := 0
	opts := search.Options{Trace: func(ev search.TraceEvent) {
		events++
		require.GreaterOrEqual(t, ev.Cost, 0)
	}}
	runSplit(t, set, n, []int{2, 2}, opts)

	// Top level: 2!·4 = 8; two sub-levels of 2!·4 each = 16.
	require.Equal(t, 24, events)
}

func runSplit(t *testing.T, set *workset.Set, n *grid.Neighbours, subSlices []int, opts search.Options) []*workset.Set {
	t.Helper()
	sp, err := search.New(set, n, subSlices, opts)
	require.NoError(t, err)
	leaves, err := sp.Split(context.Background())
	require.NoError(t, err)
	return leaves
}
