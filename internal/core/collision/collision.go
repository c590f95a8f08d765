// Package collision turns the walls of a finished maze into thin rectangles
// and answers "would this rectangle hit a wall" queries.
package collision

import (
	"fmt"

	"github.com/dhconnelly/rtreego"

	"chosenoffset.com/mazewalk/internal/core/geom"
	"chosenoffset.com/mazewalk/internal/world/maze"
)

// R-tree branching factors. The trees are small (a few hundred walls per
// side) so these only need to be sane.
const (
	treeMinChildren = 4
	treeMaxChildren = 16
)

// Collider is an immutable barrier covering one cell edge.
type Collider struct {
	Rect geom.Rect
	Cell maze.Coord
	Side maze.Direction

	bounds rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (c *Collider) Bounds() rtreego.Rect {
	return c.bounds
}

// Set holds the colliders of one maze run, grouped by the side of the cell
// they sit on. Movement in a direction only has to test the matching group.
type Set struct {
	tile      float64
	thickness float64

	colliders [4][]*Collider
	index     [4]*rtreego.Rtree
}

// NewSet creates an empty set for a grid with the given tile size. Each wall
// collider extends thickness pixels to either side of its edge.
func NewSet(tile, thickness float64) (*Set, error) {
	if tile <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %v", tile)
	}
	if thickness <= 0 || thickness*2 > tile {
		return nil, fmt.Errorf("wall thickness %v must be in (0, %v]", thickness, tile/2)
	}
	s := &Set{tile: tile, thickness: thickness}
	s.Clear()
	return s, nil
}

// Clear drops every collider.
func (s *Set) Clear() {
	for i := range s.colliders {
		s.colliders[i] = nil
		s.index[i] = rtreego.NewTree(2, treeMinChildren, treeMaxChildren)
	}
}

// edgeRect returns the collider rectangle for side d of the cell at (cx, cy).
func (s *Set) edgeRect(cx, cy int, d maze.Direction) geom.Rect {
	x := float64(cx) * s.tile
	y := float64(cy) * s.tile
	t := s.thickness

	switch d {
	case maze.Top:
		return geom.NewRect(x, y-t, s.tile, 2*t)
	case maze.Right:
		return geom.NewRect(x+s.tile-t, y, 2*t, s.tile)
	case maze.Bottom:
		return geom.NewRect(x, y+s.tile-t, s.tile, 2*t)
	default:
		return geom.NewRect(x-t, y, 2*t, s.tile)
	}
}

// Materialize builds colliders for every standing wall of c that does not
// have one yet. Calling it again for the same cell adds nothing.
func (s *Set) Materialize(c *maze.Cell) int {
	added := 0
	for _, d := range maze.Directions {
		if !c.HasWall(d) || !c.NeedsCollider(d) {
			continue
		}
		r := s.edgeRect(c.X, c.Y, d)
		bounds, err := rtreego.NewRect(rtreego.Point{r.X, r.Y}, []float64{r.W, r.H})
		if err != nil {
			// Unreachable with a validated tile size and thickness.
			panic(fmt.Sprintf("collision: invalid collider %+v: %v", r, err))
		}
		col := &Collider{Rect: r, Cell: c.Coord(), Side: d, bounds: bounds}
		s.colliders[d] = append(s.colliders[d], col)
		s.index[d].Insert(col)
		c.MarkColliderBuilt(d)
		added++
	}
	return added
}

// MaterializeGrid runs Materialize over every cell of a finished grid.
func (s *Set) MaterializeGrid(g *maze.Grid) int {
	cells := g.Cells()
	added := 0
	for i := range cells {
		added += s.Materialize(&cells[i])
	}
	return added
}

// Blocking returns the colliders on side d that r overlaps.
func (s *Set) Blocking(r geom.Rect, d maze.Direction) []*Collider {
	if !d.Valid() || r.W <= 0 || r.H <= 0 {
		return nil
	}
	query, err := rtreego.NewRect(rtreego.Point{r.X, r.Y}, []float64{r.W, r.H})
	if err != nil {
		return nil
	}

	var hits []*Collider
	for _, sp := range s.index[d].SearchIntersect(query) {
		col := sp.(*Collider)
		// The index is inclusive at the edges; walls only block on real overlap.
		if col.Rect.Overlaps(r) {
			hits = append(hits, col)
		}
	}
	return hits
}

// CollidesInDirection reports whether r overlaps any collider on side d.
func (s *Set) CollidesInDirection(r geom.Rect, d maze.Direction) bool {
	return len(s.Blocking(r, d)) > 0
}

// Colliders returns the colliders on side d. Callers must not modify it.
func (s *Set) Colliders(d maze.Direction) []*Collider {
	if !d.Valid() {
		return nil
	}
	return s.colliders[d]
}

// Len returns the total number of colliders.
func (s *Set) Len() int {
	n := 0
	for _, group := range s.colliders {
		n += len(group)
	}
	return n
}
