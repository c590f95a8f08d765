package walls

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/mazewalk/internal/world/maze"
)

func length(s Segment) float64 {
	return (s.B.X - s.A.X) + (s.B.Y - s.A.Y)
}

func TestEnclosedGridIsOneSegmentPerLine(t *testing.T) {
	g, err := maze.NewGrid(3, 2)
	require.NoError(t, err)

	segs := FromGrid(g, 10)
	// 3 horizontal lines and 4 vertical lines, each unbroken.
	require.Len(t, segs, 7)

	first := segs[0]
	assert.True(t, first.Horizontal)
	assert.Equal(t, 0.0, first.A.X)
	assert.Equal(t, 30.0, first.B.X)
	assert.Equal(t, 0.0, first.B.Y)

	last := segs[len(segs)-1]
	assert.False(t, last.Horizontal)
	assert.Equal(t, 30.0, last.A.X)
	assert.Equal(t, 20.0, length(last))
}

func TestCarvedWallSplitsLine(t *testing.T) {
	g, err := maze.NewGrid(3, 1)
	require.NoError(t, err)
	c, _ := g.Cell(1, 0)
	_, ok := g.Carve(c, maze.Right)
	require.True(t, ok)

	var vertical []Segment
	for _, s := range FromGrid(g, 10) {
		if !s.Horizontal {
			vertical = append(vertical, s)
		}
	}
	// x=20 is gone; x=0, 10 and 30 remain.
	require.Len(t, vertical, 3)
	assert.Equal(t, 0.0, vertical[0].A.X)
	assert.Equal(t, 10.0, vertical[1].A.X)
	assert.Equal(t, 30.0, vertical[2].A.X)
}

// Every wall unit of the grid is covered exactly once.
func TestSegmentsCoverEveryWallOnce(t *testing.T) {
	g, err := maze.NewGrid(8, 6)
	require.NoError(t, err)
	maze.NewGenerator(g, rand.New(rand.NewSource(11))).Run()

	units := 0
	cells := g.Cells()
	for i := range cells {
		c := &cells[i]
		if c.HasWall(maze.Top) {
			units++
		}
		if c.HasWall(maze.Left) {
			units++
		}
		if c.X == g.Cols()-1 && c.HasWall(maze.Right) {
			units++
		}
		if c.Y == g.Rows()-1 && c.HasWall(maze.Bottom) {
			units++
		}
	}

	total := 0.0
	for _, s := range FromGrid(g, 1) {
		total += length(s)
	}
	assert.Equal(t, float64(units), total)
}
