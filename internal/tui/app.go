// Package tui implements the interactive distribution viewer: a terminal
// rendering of a computed distribution over its grid, with a cursor for
// inspecting individual blocks (work, communication, halo size).
//
// It follows the Elm architecture used by bubbletea: a Model holding all
// state, an Update function folding messages into new state, and a View
// function rendering state to a string.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oceangrid/gridbalance/grid"
	"github.com/oceangrid/gridbalance/topo"
	"github.com/oceangrid/gridbalance/workset"
)

// blockPalette cycles over distinguishable ANSI colors for block fills.
var blockPalette = []lipgloss.Color{"2", "3", "4", "5", "6", "9", "10", "11", "12", "13", "14", "1"}

var (
	landStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle = lipgloss.NewStyle().Bold(true)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

// keyMap defines the viewer key bindings.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "north")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "south")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "west")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "east")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// blockInfo caches the per-block figures shown in the status line.
type blockInfo struct {
	work          int
	communication int
	halo          int
}

// Model is the viewer state: the distribution, its owner grid, cached
// per-block figures and the cursor position.
type Model struct {
	dist   *topo.Distribution
	owner  [][]int
	blocks map[int]blockInfo

	cursorX, cursorY int
	width, height    int

	keys keyMap
	help help.Model
}

// New builds the viewer model for a distribution under the given grid
// topology. Block communication comes from the distribution file; halo
// sizes are recomputed from the reconstructed grid.
func New(dist *topo.Distribution, topology grid.TopologyOptions) (Model, error) {
	owner, err := dist.OwnerGrid()
	if err != nil {
		return Model{}, err
	}

	// Reconstruct the activity mask: a gridpoint is ocean iff some block
	// owns it.
	mask := make([][]bool, dist.Height)
	for y := range mask {
		mask[y] = make([]bool, dist.Width)
		for x := range mask[y] {
			mask[y][x] = owner[y][x] >= 0
		}
	}
	g, err := grid.New(mask)
	if err != nil {
		return Model{}, err
	}
	neighbours := grid.NewNeighbours(g, topology)

	blocks := make(map[int]blockInfo, len(dist.Blocks))
	for _, b := range dist.Blocks {
		cells := make([]grid.Coordinate, len(b.Cells))
		for i, c := range b.Cells {
			cells[i] = grid.Coordinate{X: c.X, Y: c.Y}
		}
		set := workset.New(b.Index, cells)
		halo, err := set.Halo(neighbours)
		if err != nil {
			return Model{}, fmt.Errorf("tui: halo of block %d: %w", b.Index, err)
		}
		blocks[b.Index] = blockInfo{
			work:          set.Size(),
			communication: b.Communication,
			halo:          len(halo),
		}
	}

	return Model{
		dist:   dist,
		owner:  owner,
		blocks: blocks,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursorY < m.dist.Height-1 {
				m.cursorY++
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursorY > 0 {
				m.cursorY--
			}
		case key.Matches(msg, m.keys.Left):
			if m.cursorX > 0 {
				m.cursorX--
			}
		case key.Matches(msg, m.keys.Right):
			if m.cursorX < m.dist.Width-1 {
				m.cursorX++
			}
		}
	}
	return m, nil
}

// View implements tea.Model. Rows render north-up: the last grid row
// (largest y) appears first on screen.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("gridbalance — %d×%d grid, %d blocks",
		m.dist.Width, m.dist.Height, len(m.dist.Blocks))))
	b.WriteString("\n\n")

	for y := m.dist.Height - 1; y >= 0; y-- {
		for x := 0; x < m.dist.Width; x++ {
			b.WriteString(m.renderCell(x, y))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderCell(x, y int) string {
	idx := m.owner[y][x]
	glyph := "··"
	style := landStyle
	if idx >= 0 {
		glyph = "██"
		style = lipgloss.NewStyle().Foreground(blockPalette[idx%len(blockPalette)])
	}
	if x == m.cursorX && y == m.cursorY {
		style = cursorStyle.Foreground(style.GetForeground())
	}
	return style.Render(glyph)
}

func (m Model) statusLine() string {
	idx := m.owner[m.cursorY][m.cursorX]
	if idx < 0 {
		return statusStyle.Render(fmt.Sprintf("(%d,%d) land", m.cursorX, m.cursorY))
	}
	info := m.blocks[idx]
	return statusStyle.Render(fmt.Sprintf("(%d,%d) block %d — work %d, communication %d, halo %d",
		m.cursorX, m.cursorY, idx, info.work, info.communication, info.halo))
}
