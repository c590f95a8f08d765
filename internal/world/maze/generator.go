package maze

import "math/rand"

// State is the generator's phase.
type State int

const (
	Generating State = iota
	Done
)

func (s State) String() string {
	if s == Done {
		return "done"
	}
	return "generating"
}

// Edge is one carved passage, recorded in carve order.
type Edge struct {
	From Coord
	Dir  Direction
}

// To returns the coordinate on the far side of the edge.
func (e Edge) To() Coord {
	dx, dy := e.Dir.Delta()
	return Coord{X: e.From.X + dx, Y: e.From.Y + dy}
}

// Generator carves a perfect maze one step at a time using a randomized
// depth-first backtracker. Each Step either advances into an unvisited
// neighbor, backtracks one cell, or finishes.
type Generator struct {
	grid  *Grid
	rng   *rand.Rand
	state State

	current *Cell
	stack   []*Cell

	carved     []Edge
	backtracks int
	steps      int

	candidates []Direction
}

// NewGenerator starts a generator at cell (0,0) of grid. The grid should be
// freshly created; the generator treats every cell as unvisited.
func NewGenerator(grid *Grid, rng *rand.Rand) *Generator {
	start, _ := grid.Cell(0, 0)
	return &Generator{
		grid:       grid,
		rng:        rng,
		state:      Generating,
		current:    start,
		stack:      make([]*Cell, 0, grid.Len()),
		carved:     make([]Edge, 0, grid.Len()-1),
		candidates: make([]Direction, 0, 4),
	}
}

// Step advances the generator by one tick and returns the resulting state.
// Calling Step after Done does nothing.
func (g *Generator) Step() State {
	if g.state == Done {
		return Done
	}
	g.steps++

	g.current.visited = true

	g.candidates = g.candidates[:0]
	for _, d := range Directions {
		n, ok := g.grid.Neighbor(g.current, d)
		if ok && !n.visited {
			g.candidates = append(g.candidates, d)
		}
	}

	switch {
	case len(g.candidates) > 0:
		d := g.candidates[g.rng.Intn(len(g.candidates))]
		g.stack = append(g.stack, g.current)
		next, _ := g.grid.Carve(g.current, d)
		g.carved = append(g.carved, Edge{From: g.current.Coord(), Dir: d})
		g.current = next
	case len(g.stack) > 0:
		last := len(g.stack) - 1
		g.current = g.stack[last]
		g.stack[last] = nil
		g.stack = g.stack[:last]
		g.backtracks++
	default:
		g.state = Done
	}

	return g.state
}

// Run steps until the maze is finished.
func (g *Generator) Run() {
	for g.Step() != Done {
	}
}

func (g *Generator) State() State { return g.state }

// Current returns the cell the cursor is on.
func (g *Generator) Current() *Cell { return g.current }

// Stack returns the backtrack stack, oldest first. Callers must not modify it.
func (g *Generator) Stack() []*Cell { return g.stack }

// Carved returns the carved edges in the order they were opened.
func (g *Generator) Carved() []Edge { return g.carved }

// Backtracks returns how many times the cursor popped the stack.
func (g *Generator) Backtracks() int { return g.backtracks }

// Steps returns how many ticks have run, including the final one.
func (g *Generator) Steps() int { return g.steps }

// Grid returns the grid being carved.
func (g *Generator) Grid() *Grid { return g.grid }
