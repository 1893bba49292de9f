package topo_test

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oceangrid/gridbalance/grid"
	"github.com/oceangrid/gridbalance/topo"
	"github.com/oceangrid/gridbalance/workset"
)

func TestReadASCII(t *testing.T) {
	in := "0 3 0\n2 0 1\n\n"
	tp, err := topo.ReadASCII(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, tp.Width)
	require.Equal(t, 2, tp.Height)
	require.Equal(t, [][]int{{0, 3, 0}, {2, 0, 1}}, tp.Levels)

	mask := tp.Mask()
	require.Equal(t, [][]bool{{false, true, false}, {true, false, true}}, mask)

	g, err := tp.Grid()
	require.NoError(t, err)
	require.Equal(t, 3, g.ActiveCount())
}

func TestReadASCII_Errors(t *testing.T) {
	_, err := topo.ReadASCII(strings.NewReader("1 2\n3\n"))
	require.ErrorIs(t, err, topo.ErrRaggedRows)

	_, err = topo.ReadASCII(strings.NewReader("\n\n"))
	require.ErrorIs(t, err, topo.ErrEmptyTopography)

	_, err = topo.ReadASCII(strings.NewReader("1 x\n"))
	require.Error(t, err)
}

func TestReadRaw(t *testing.T) {
	values := []int32{0, 1, 2, 3, 0, 5}
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, values))

	tp, err := topo.ReadRaw(&buf, 3, 2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 2}, {3, 0, 5}}, tp.Levels)
}

func TestReadRaw_Errors(t *testing.T) {
	_, err := topo.ReadRaw(bytes.NewReader(nil), 0, 2)
	require.ErrorIs(t, err, topo.ErrBadDimensions)

	short := bytes.NewReader([]byte{0, 0, 0, 1})
	_, err = topo.ReadRaw(short, 3, 2)
	require.ErrorIs(t, err, topo.ErrShortFile)
}

func TestDistribution_RoundTrip(t *testing.T) {
	mask := [][]bool{{true, true}, {true, true}}
	g, err := grid.New(mask)
	require.NoError(t, err)
	n := grid.NewNeighbours(g, grid.TopologyOptions{})

	sets := []*workset.Set{
		workset.New(0, []grid.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}),
		workset.New(1, []grid.Coordinate{{X: 0, Y: 1}, {X: 1, Y: 1}}),
	}
	dist, err := topo.FromSets(g, n, sets)
	require.NoError(t, err)
	require.Equal(t, 4, dist.TotalWork())
	require.Equal(t, 4, dist.TotalCommunication())

	path := filepath.Join(t.TempDir(), "dist.yaml")
	require.NoError(t, dist.Save(path))

	loaded, err := topo.LoadDistribution(path)
	require.NoError(t, err)
	require.Equal(t, dist, loaded)
}

func TestDistribution_OwnerGrid(t *testing.T) {
	dist := &topo.Distribution{
		Width:  2,
		Height: 2,
		Blocks: []topo.Block{
			{Index: 0, Cells: []topo.Cell{{X: 0, Y: 0}}},
			{Index: 1, Cells: []topo.Cell{{X: 1, Y: 1}}},
		},
	}
	owner, err := dist.OwnerGrid()
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, -1}, {-1, 1}}, owner)

	bad := &topo.Distribution{
		Width:  2,
		Height: 2,
		Blocks: []topo.Block{{Index: 0, Cells: []topo.Cell{{X: 5, Y: 0}}}},
	}
	_, err = bad.OwnerGrid()
	require.ErrorIs(t, err, topo.ErrBlockOutOfGrid)
}
