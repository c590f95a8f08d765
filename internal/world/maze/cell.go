package maze

// Coord is a cell position on the grid.
type Coord struct {
	X, Y int
}

// Cell is one grid unit. Cells are owned by a Grid and only mutated through it,
// the Generator, or a collider set building colliders for its walls.
type Cell struct {
	X, Y int

	walls         [4]bool
	visited       bool
	needsCollider [4]bool
}

func newCell(x, y int) Cell {
	return Cell{
		X:             x,
		Y:             y,
		walls:         [4]bool{true, true, true, true},
		needsCollider: [4]bool{true, true, true, true},
	}
}

// Coord returns the cell's grid position.
func (c *Cell) Coord() Coord {
	return Coord{X: c.X, Y: c.Y}
}

// HasWall reports whether the wall on side d is still standing.
func (c *Cell) HasWall(d Direction) bool {
	if !d.Valid() {
		return false
	}
	return c.walls[d]
}

// Walls returns a copy of the wall flags indexed by Direction.
func (c *Cell) Walls() [4]bool {
	return c.walls
}

// Visited reports whether the generator has entered this cell.
func (c *Cell) Visited() bool {
	return c.visited
}

// NeedsCollider reports whether a collider for side d still has to be built.
func (c *Cell) NeedsCollider(d Direction) bool {
	if !d.Valid() {
		return false
	}
	return c.needsCollider[d]
}

// MarkColliderBuilt records that the collider for side d exists. One-way.
func (c *Cell) MarkColliderBuilt(d Direction) {
	if d.Valid() {
		c.needsCollider[d] = false
	}
}
