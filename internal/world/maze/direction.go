package maze

// Direction names one side of a cell.
type Direction int

const (
	Top Direction = iota
	Right
	Bottom
	Left

	// NoDirection means "stand still" when used as movement input.
	NoDirection Direction = -1
)

// Directions lists the four sides in neighbor-scan order.
var Directions = [4]Direction{Top, Right, Bottom, Left}

// step describes how to reach the neighbor on one side and which walls a
// carve through that side clears.
type step struct {
	dx, dy   int
	current  Direction // wall cleared on the cell being carved from
	neighbor Direction // wall cleared on the cell being carved into
}

var steps = [4]step{
	Top:    {dx: 0, dy: -1, current: Top, neighbor: Bottom},
	Right:  {dx: 1, dy: 0, current: Right, neighbor: Left},
	Bottom: {dx: 0, dy: 1, current: Bottom, neighbor: Top},
	Left:   {dx: -1, dy: 0, current: Left, neighbor: Right},
}

// Valid reports whether d is one of the four sides.
func (d Direction) Valid() bool {
	return d >= Top && d <= Left
}

// Delta returns the grid offset to the neighbor on side d.
func (d Direction) Delta() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	s := steps[d]
	return s.dx, s.dy
}

// Opposite returns the side facing d.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return NoDirection
	}
	return steps[d].neighbor
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "none"
	}
}
