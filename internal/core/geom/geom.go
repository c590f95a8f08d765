// Package geom holds the small amount of 2D geometry the game needs:
// points and axis-aligned rectangles in pixel space.
package geom

// Point represents a 2D point in space
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt creates a rectangle of the given size whose top-left corner is p.
func RectAt(p Point, w, h float64) Rect {
	return Rect{X: p.X, Y: p.Y, W: w, H: h}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Overlaps reports whether r and o share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() &&
		r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Contains reports whether o lies entirely inside r. Shared edges count as inside.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.MaxX() <= r.MaxX() &&
		o.Y >= r.Y && o.MaxY() <= r.MaxY()
}

// ClampInside returns o moved by the smallest offset that places it inside r.
// If o is larger than r along an axis, it is aligned to r's minimum edge.
func (r Rect) ClampInside(o Rect) Rect {
	if o.MaxX() > r.MaxX() {
		o.X = r.MaxX() - o.W
	}
	if o.X < r.X {
		o.X = r.X
	}
	if o.MaxY() > r.MaxY() {
		o.Y = r.MaxY() - o.H
	}
	if o.Y < r.Y {
		o.Y = r.Y
	}
	return o
}
