// Package level generates and validates Magnet Maze layouts.
// A layout is a grid of cells with one start, one goal and a set of
// obstacles; the generator guarantees a 4-connected path between the two.
package level

import (
	"fmt"
	"strings"
)

// Coord is a cell position: X is the column, Y is the row.
type Coord struct {
	X, Y int
}

// C is shorthand for constructing a Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// String formats the coordinate as (row,col).
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Y, c.X)
}

// Neighbors4 are the orthogonal steps used for connectivity.
var Neighbors4 = [4]Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// CellState is the content of a grid cell.
type CellState uint8

const (
	Empty CellState = iota
	Start
	Goal
	Obstacle
)

// Rune returns the ASCII glyph used by the text formats.
func (s CellState) Rune() rune {
	switch s {
	case Start:
		return 'S'
	case Goal:
		return 'E'
	case Obstacle:
		return 'O'
	default:
		return '.'
	}
}

// String returns the state name.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Start:
		return "start"
	case Goal:
		return "goal"
	case Obstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// ParseCell converts an ASCII glyph back into a CellState.
func ParseCell(r rune) (CellState, bool) {
	switch r {
	case '.', ' ':
		return Empty, true
	case 'S':
		return Start, true
	case 'E', 'G':
		return Goal, true
	case 'O', '#':
		return Obstacle, true
	}
	return Empty, false
}

// Grid is the level matrix. Cells are stored in row-major order:
// index = y*W + x.
type Grid struct {
	W, H  int
	Cells []CellState
}

// NewGrid creates an all-empty grid.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, Cells: make([]CellState, w*h)}
}

// StartFor returns the start cell for a grid of the given size:
// middle row, first column.
func StartFor(w, h int) Coord {
	return C(0, h/2)
}

// GoalFor returns the goal cell: middle row, last column.
func GoalFor(w, h int) Coord {
	return C(w-1, h/2)
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Get returns the state at c. Out-of-bounds cells read as Obstacle so
// walkers never step off the grid.
func (g *Grid) Get(c Coord) CellState {
	if !g.InBounds(c) {
		return Obstacle
	}
	return g.Cells[g.index(c)]
}

// Set writes the state at c; out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, s CellState) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = s
	}
}

// Passable reports whether a walker may enter c.
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && g.Get(c) != Obstacle
}

// Count returns how many cells hold the given state.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, cs := range g.Cells {
		if cs == s {
			n++
		}
	}
	return n
}

// Find returns the first cell (row-major) holding s.
func (g *Grid) Find(s CellState) (Coord, bool) {
	for i, cs := range g.Cells {
		if cs == s {
			return C(i%g.W, i/g.W), true
		}
	}
	return Coord{}, false
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{W: g.W, H: g.H, Cells: cells}
}

// Equal reports whether two grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i := range g.Cells {
		if g.Cells[i] != o.Cells[i] {
			return false
		}
	}
	return true
}

// Rows renders each row as an ASCII string.
func (g *Grid) Rows() []string {
	rows := make([]string, g.H)
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		sb.Reset()
		for x := 0; x < g.W; x++ {
			sb.WriteRune(g.Get(C(x, y)).Rune())
		}
		rows[y] = sb.String()
	}
	return rows
}

// String renders the grid as newline-separated ASCII rows.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// GridFromRows parses ASCII rows (see CellState.Rune) into a grid.
func GridFromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("level: no rows")
	}
	w := len([]rune(rows[0]))
	g := NewGrid(w, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("level: row %d has width %d, expected %d", y, len(runes), w)
		}
		for x, r := range runes {
			s, ok := ParseCell(r)
			if !ok {
				return nil, fmt.Errorf("level: unknown cell %q at %s", r, C(x, y))
			}
			g.Set(C(x, y), s)
		}
	}
	return g, nil
}
