package topo

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oceangrid/gridbalance/grid"
	"github.com/oceangrid/gridbalance/workset"
)

// ErrBlockOutOfGrid indicates a distribution cell outside its grid bounds.
var ErrBlockOutOfGrid = errors.New("topo: distribution cell out of grid bounds")

// Cell is one gridpoint of a block, in distribution files.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Block is one leaf work set of a computed distribution.
type Block struct {
	Index         int    `yaml:"index"`
	Communication int    `yaml:"communication"`
	Cells         []Cell `yaml:"cells"`
}

// Distribution is a persisted partition of a grid's work: the grid
// dimensions and, per leaf block, its gridpoints and communication score.
type Distribution struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Blocks []Block `yaml:"blocks"`
}

// FromSets captures a computed partition as a Distribution, scoring each
// set against the adjacency policy.
func FromSets(g *grid.Grid, n *grid.Neighbours, sets []*workset.Set) (*Distribution, error) {
	d := &Distribution{Width: g.Width, Height: g.Height, Blocks: make([]Block, 0, len(sets))}
	for _, s := range sets {
		comm, err := s.Communication(n)
		if err != nil {
			return nil, fmt.Errorf("topo: score block %d: %w", s.Index(), err)
		}
		b := Block{Index: s.Index(), Communication: comm, Cells: make([]Cell, 0, s.Size())}
		for _, c := range s.Cells() {
			b.Cells = append(b.Cells, Cell{X: c.X, Y: c.Y})
		}
		d.Blocks = append(d.Blocks, b)
	}
	return d, nil
}

// Save writes the distribution as YAML.
func (d *Distribution) Save(path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("topo: encode distribution: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("topo: write distribution: %w", err)
	}
	return nil
}

// LoadDistribution reads a YAML distribution file.
func LoadDistribution(path string) (*Distribution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("topo: read distribution: %w", err)
	}
	var d Distribution
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("topo: decode distribution: %w", err)
	}
	return &d, nil
}

// OwnerGrid maps every gridpoint to the index of the block owning it, or
// -1 for unowned (land) gridpoints. Returns ErrBlockOutOfGrid if a block
// cell lies outside the declared dimensions.
func (d *Distribution) OwnerGrid() ([][]int, error) {
	owner := make([][]int, d.Height)
	for y := range owner {
		owner[y] = make([]int, d.Width)
		for x := range owner[y] {
			owner[y][x] = -1
		}
	}
	for _, b := range d.Blocks {
		for _, c := range b.Cells {
			if c.X < 0 || c.X >= d.Width || c.Y < 0 || c.Y >= d.Height {
				return nil, fmt.Errorf("%w: block %d cell (%d,%d)", ErrBlockOutOfGrid, b.Index, c.X, c.Y)
			}
			owner[c.Y][c.X] = b.Index
		}
	}
	return owner, nil
}

// TotalWork sums the block sizes.
func (d *Distribution) TotalWork() int {
	total := 0
	for _, b := range d.Blocks {
		total += len(b.Cells)
	}
	return total
}

// TotalCommunication sums the block communication scores.
func (d *Distribution) TotalCommunication() int {
	total := 0
	for _, b := range d.Blocks {
		total += b.Communication
	}
	return total
}
