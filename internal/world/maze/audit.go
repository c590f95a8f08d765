package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Report summarizes the structure of a carved grid.
type Report struct {
	Cells        int
	Visited      int
	OpenEdges    int
	Reachable    int
	Asymmetric   int // cell sides whose neighbor disagrees about the shared wall
	OuterOpening int // outer boundary walls that were removed
}

// Connected reports whether every cell is reachable from (0,0).
func (r Report) Connected() bool {
	return r.Reachable == r.Cells
}

// IsPerfect reports whether the open edges form a spanning tree: every
// cell reachable, walls consistent from both sides, and exactly cells-1
// passages, which rules out cycles.
func (r Report) IsPerfect() bool {
	return r.Asymmetric == 0 && r.OuterOpening == 0 &&
		r.Connected() && r.OpenEdges == r.Cells-1
}

func (r Report) String() string {
	return fmt.Sprintf("cells=%d visited=%d edges=%d reachable=%d asymmetric=%d outer=%d perfect=%t",
		r.Cells, r.Visited, r.OpenEdges, r.Reachable, r.Asymmetric, r.OuterOpening, r.IsPerfect())
}

// Audit walks the grid and checks it is a perfect maze.
func (g *Grid) Audit() Report {
	r := Report{Cells: g.Len()}

	for i := range g.cells {
		c := &g.cells[i]
		if c.visited {
			r.Visited++
		}
		for _, d := range Directions {
			n, ok := g.Neighbor(c, d)
			if !ok {
				if !c.walls[d] {
					r.OuterOpening++
				}
				continue
			}
			if c.walls[d] != n.walls[d.Opposite()] {
				r.Asymmetric++
				continue
			}
			// Count each shared edge once, from its right/bottom side owner.
			if (d == Right || d == Bottom) && !c.walls[d] {
				r.OpenEdges++
			}
		}
	}

	r.Reachable = g.reachableFrom(Coord{})
	return r
}

func (g *Grid) reachableFrom(start Coord) int {
	seen := mapset.New[Coord]()
	queue := []Coord{start}
	seen.Put(start)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		c, _ := g.Cell(cur.X, cur.Y)
		for _, d := range Directions {
			if !g.Open(c, d) {
				continue
			}
			n, _ := g.Neighbor(c, d)
			if seen.Has(n.Coord()) {
				continue
			}
			seen.Put(n.Coord())
			queue = append(queue, n.Coord())
		}
	}
	return seen.Size()
}
