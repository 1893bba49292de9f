package topo

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/oceangrid/gridbalance/grid"
)

// Sentinel errors for topography loading.
var (
	// ErrBadDimensions indicates non-positive width or height.
	ErrBadDimensions = errors.New("topo: width and height must be positive")
	// ErrShortFile indicates a raw file smaller than width×height values.
	ErrShortFile = errors.New("topo: raw topography file too short")
	// ErrRaggedRows indicates ASCII rows of differing lengths.
	ErrRaggedRows = errors.New("topo: all topography rows must have the same length")
	// ErrEmptyTopography indicates an ASCII file with no rows.
	ErrEmptyTopography = errors.New("topo: topography has no rows")
)

// Topography is the per-gridpoint depth-level field of the model grid.
// Levels[y][x] > 0 marks an ocean gridpoint; 0 (or below) is land.
// Row y=0 is the southernmost row.
type Topography struct {
	Width, Height int
	Levels        [][]int
}

// LoadRaw reads the model's native topography dump: width×height
// big-endian int32 values, row-major, southernmost row first.
func LoadRaw(path string, width, height int) (*Topography, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("topo: open raw topography: %w", err)
	}
	defer f.Close()
	return ReadRaw(f, width, height)
}

// ReadRaw decodes a raw topography stream; see LoadRaw for the layout.
func ReadRaw(r io.Reader, width, height int) (*Topography, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	values := make([]int32, width*height)
	if err := binary.Read(bufio.NewReader(r), binary.BigEndian, values); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrShortFile
		}
		return nil, fmt.Errorf("topo: read raw topography: %w", err)
	}
	levels := make([][]int, height)
	for y := 0; y < height; y++ {
		levels[y] = make([]int, width)
		for x := 0; x < width; x++ {
			levels[y][x] = int(values[y*width+x])
		}
	}
	return &Topography{Width: width, Height: height, Levels: levels}, nil
}

// LoadASCII reads a whitespace-separated integer grid, one row per line,
// southernmost row first. Blank lines are skipped.
func LoadASCII(path string) (*Topography, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("topo: open topography: %w", err)
	}
	defer f.Close()
	return ReadASCII(f)
}

// ReadASCII decodes an ASCII topography stream; see LoadASCII.
func ReadASCII(r io.Reader) (*Topography, error) {
	var levels [][]int
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("topo: row %d: %w", len(levels), err)
			}
			row[i] = v
		}
		if len(levels) > 0 && len(row) != len(levels[0]) {
			return nil, ErrRaggedRows
		}
		levels = append(levels, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("topo: read topography: %w", err)
	}
	if len(levels) == 0 {
		return nil, ErrEmptyTopography
	}
	return &Topography{Width: len(levels[0]), Height: len(levels), Levels: levels}, nil
}

// Mask returns the activity mask: true where the depth level is positive.
func (t *Topography) Mask() [][]bool {
	mask := make([][]bool, t.Height)
	for y := 0; y < t.Height; y++ {
		mask[y] = make([]bool, t.Width)
		for x := 0; x < t.Width; x++ {
			mask[y][x] = t.Levels[y][x] > 0
		}
	}
	return mask
}

// Grid builds the immutable work grid for this topography.
func (t *Topography) Grid() (*grid.Grid, error) {
	return grid.New(t.Mask())
}
