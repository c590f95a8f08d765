// Package maze models the maze grid and carves it with a randomized
// depth-first backtracker.
package maze

import (
	"fmt"
	"strings"
)

// Grid owns a fixed cols x rows array of cells stored row-major.
type Grid struct {
	cols, rows int
	cells      []Cell
}

// NewGrid creates a fully walled grid.
func NewGrid(cols, rows int) (*Grid, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("grid must be at least 1x1, got %dx%d", cols, rows)
	}
	count := cols * rows
	if count/cols != rows {
		return nil, fmt.Errorf("grid %dx%d is too large", cols, rows)
	}

	g := &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, count),
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			g.cells[g.index(x, y)] = newCell(x, y)
		}
	}
	return g, nil
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

func (g *Grid) index(x, y int) int {
	return x + y*g.cols
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Cell returns the cell at (x, y), or false if the position is off the grid.
func (g *Grid) Cell(x, y int) (*Cell, bool) {
	if !g.inBounds(x, y) {
		return nil, false
	}
	return &g.cells[g.index(x, y)], true
}

// Cells returns every cell in index order. The slice aliases the grid.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// Neighbor returns the adjacent cell on side d. Falling off the grid is a
// normal outcome reported as false.
func (g *Grid) Neighbor(c *Cell, d Direction) (*Cell, bool) {
	if c == nil || !d.Valid() {
		return nil, false
	}
	dx, dy := d.Delta()
	return g.Cell(c.X+dx, c.Y+dy)
}

// Carve opens the edge between c and its neighbor on side d. Both cells lose
// their facing wall in the same call. It reports false if there is no
// neighbor on that side.
func (g *Grid) Carve(c *Cell, d Direction) (*Cell, bool) {
	next, ok := g.Neighbor(c, d)
	if !ok {
		return nil, false
	}
	s := steps[d]
	c.walls[s.current] = false
	next.walls[s.neighbor] = false
	return next, true
}

// Open reports whether the edge on side d of c has been carved.
func (g *Grid) Open(c *Cell, d Direction) bool {
	if _, ok := g.Neighbor(c, d); !ok {
		return false
	}
	return !c.HasWall(d)
}

// String renders the grid as ASCII art, one text row per wall row and cell row.
func (g *Grid) String() string {
	var b strings.Builder

	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			c, _ := g.Cell(x, y)
			b.WriteString("+")
			if c.HasWall(Top) {
				b.WriteString("---")
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString("+\n")

		for x := 0; x < g.cols; x++ {
			c, _ := g.Cell(x, y)
			if c.HasWall(Left) {
				b.WriteString("|   ")
			} else {
				b.WriteString("    ")
			}
		}
		last, _ := g.Cell(g.cols-1, y)
		if last.HasWall(Right) {
			b.WriteString("|\n")
		} else {
			b.WriteString(" \n")
		}
	}

	for x := 0; x < g.cols; x++ {
		c, _ := g.Cell(x, g.rows-1)
		b.WriteString("+")
		if c.HasWall(Bottom) {
			b.WriteString("---")
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString("+\n")

	return b.String()
}
