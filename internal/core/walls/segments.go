// Package walls flattens the standing walls of a maze grid into line
// segments for drawing. Walls that continue in a straight line across
// several cells come out as one segment.
package walls

import (
	"chosenoffset.com/mazewalk/internal/core/geom"
	"chosenoffset.com/mazewalk/internal/world/maze"
)

// Segment is a straight run of wall along one grid line, A to B.
type Segment struct {
	A, B       geom.Point
	Horizontal bool
}

// FromGrid returns the merged wall segments of g for a tile size in pixels.
// Each wall between two cells is drawn once even though both cells store it.
func FromGrid(g *maze.Grid, tile float64) []Segment {
	var segments []Segment
	segments = appendHorizontal(segments, g, tile)
	segments = appendVertical(segments, g, tile)
	return segments
}

// appendHorizontal scans each horizontal grid line left to right. Line y
// is the top edge of row y; the last line is the bottom edge of the last row.
func appendHorizontal(segments []Segment, g *maze.Grid, tile float64) []Segment {
	for y := 0; y <= g.Rows(); y++ {
		var run *Segment
		for x := 0; x < g.Cols(); x++ {
			if !hasHorizontal(g, x, y) {
				if run != nil {
					segments = append(segments, *run)
					run = nil
				}
				continue
			}
			if run == nil {
				py := float64(y) * tile
				run = &Segment{
					A:          geom.Point{X: float64(x) * tile, Y: py},
					B:          geom.Point{X: float64(x) * tile, Y: py},
					Horizontal: true,
				}
			}
			run.B.X += tile
		}
		if run != nil {
			segments = append(segments, *run)
		}
	}
	return segments
}

func hasHorizontal(g *maze.Grid, x, y int) bool {
	if y < g.Rows() {
		c, _ := g.Cell(x, y)
		return c.HasWall(maze.Top)
	}
	c, _ := g.Cell(x, y-1)
	return c.HasWall(maze.Bottom)
}

// appendVertical scans each vertical grid line top to bottom.
func appendVertical(segments []Segment, g *maze.Grid, tile float64) []Segment {
	for x := 0; x <= g.Cols(); x++ {
		var run *Segment
		for y := 0; y < g.Rows(); y++ {
			if !hasVertical(g, x, y) {
				if run != nil {
					segments = append(segments, *run)
					run = nil
				}
				continue
			}
			if run == nil {
				px := float64(x) * tile
				run = &Segment{
					A: geom.Point{X: px, Y: float64(y) * tile},
					B: geom.Point{X: px, Y: float64(y) * tile},
				}
			}
			run.B.Y += tile
		}
		if run != nil {
			segments = append(segments, *run)
		}
	}
	return segments
}

func hasVertical(g *maze.Grid, x, y int) bool {
	if x < g.Cols() {
		c, _ := g.Cell(x, y)
		return c.HasWall(maze.Left)
	}
	c, _ := g.Cell(x-1, y)
	return c.HasWall(maze.Right)
}
