package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlaps(t *testing.T) {
	base := NewRect(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", NewRect(0, 0, 10, 10), true},
		{"partial", NewRect(5, 5, 10, 10), true},
		{"inside", NewRect(2, 2, 3, 3), true},
		{"touching right edge", NewRect(10, 0, 5, 5), false},
		{"touching bottom edge", NewRect(0, 10, 5, 5), false},
		{"touching corner", NewRect(10, 10, 5, 5), false},
		{"disjoint", NewRect(20, 20, 5, 5), false},
		{"one unit past edge", NewRect(9, 0, 5, 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestRectContains(t *testing.T) {
	area := NewRect(0, 0, 100, 50)

	assert.True(t, area.Contains(NewRect(0, 0, 10, 10)))
	assert.True(t, area.Contains(NewRect(90, 40, 10, 10)))
	assert.False(t, area.Contains(NewRect(-1, 0, 10, 10)))
	assert.False(t, area.Contains(NewRect(91, 0, 10, 10)))
	assert.False(t, area.Contains(NewRect(0, 41, 10, 10)))
}

func TestClampInside(t *testing.T) {
	area := NewRect(0, 0, 100, 50)

	got := area.ClampInside(NewRect(-5, 45, 10, 10))
	assert.Equal(t, NewRect(0, 40, 10, 10), got)

	got = area.ClampInside(NewRect(95, -3, 10, 10))
	assert.Equal(t, NewRect(90, 0, 10, 10), got)

	inside := NewRect(20, 20, 10, 10)
	assert.Equal(t, inside, area.ClampInside(inside))
}

func TestTranslate(t *testing.T) {
	r := NewRect(10, 20, 4, 6).Translate(-2, 3)
	assert.Equal(t, Point{X: 8, Y: 23}, r.Min())
	assert.Equal(t, 12.0, r.MaxX())
	assert.Equal(t, 29.0, r.MaxY())
}
