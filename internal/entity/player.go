// Package entity contains the player token that walks the finished maze.
package entity

import (
	"fmt"
	"strings"

	"chosenoffset.com/mazewalk/internal/core/collision"
	"chosenoffset.com/mazewalk/internal/core/geom"
	"chosenoffset.com/mazewalk/internal/world/maze"
)

// maxPushes bounds how many times a blocked move is re-resolved against
// newly touched walls before the player is left where it was.
const maxPushes = 8

// bounceFactor is how many steps the legacy policy knocks the player back.
const bounceFactor = 4

// Policy decides where a blocked move leaves the player.
type Policy int

const (
	// PolicyClamp stops the player flush against whatever blocked it.
	PolicyClamp Policy = iota
	// PolicyBounce knocks the player back four steps. Coarse: with tiles
	// close to the step size it can land the player inside another wall.
	PolicyBounce
)

// ParsePolicy converts a config string into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clamp":
		return PolicyClamp, nil
	case "bounce":
		return PolicyBounce, nil
	default:
		return PolicyClamp, fmt.Errorf("unknown collision policy %q", s)
	}
}

func (p Policy) String() string {
	if p == PolicyBounce {
		return "bounce"
	}
	return "clamp"
}

// Outcome reports what a single Move did.
type Outcome int

const (
	Idle    Outcome = iota // no direction given
	Moved                  // full step taken
	Blocked                // wall or play-area edge in the way
)

// Walls is the collision surface a player moves against.
type Walls interface {
	Blocking(r geom.Rect, d maze.Direction) []*collision.Collider
}

// PlayerConfig describes a player at spawn.
type PlayerConfig struct {
	Start  geom.Point // top-left corner of the bounding box
	Size   float64    // bounding box edge length
	Speed  float64    // pixels per tick
	Bounds geom.Rect  // play area the player must stay inside
	Policy Policy
}

// Player is the token the user steers through the maze.
type Player struct {
	pos    geom.Point
	size   float64
	speed  float64
	bounds geom.Rect
	policy Policy
}

// NewPlayer creates a player at cfg.Start.
func NewPlayer(cfg PlayerConfig) (*Player, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("player size must be positive, got %v", cfg.Size)
	}
	if cfg.Speed <= 0 {
		return nil, fmt.Errorf("player speed must be positive, got %v", cfg.Speed)
	}
	if cfg.Size > cfg.Bounds.W || cfg.Size > cfg.Bounds.H {
		return nil, fmt.Errorf("player size %v does not fit play area %vx%v", cfg.Size, cfg.Bounds.W, cfg.Bounds.H)
	}
	p := &Player{
		size:   cfg.Size,
		speed:  cfg.Speed,
		bounds: cfg.Bounds,
		policy: cfg.Policy,
	}
	p.pos = cfg.Bounds.ClampInside(geom.RectAt(cfg.Start, cfg.Size, cfg.Size)).Min()
	return p, nil
}

// Position returns the top-left corner of the bounding box.
func (p *Player) Position() geom.Point {
	return p.pos
}

// Rect returns the bounding box at the current position.
func (p *Player) Rect() geom.Rect {
	return geom.RectAt(p.pos, p.size, p.size)
}

// Speed returns the step length in pixels.
func (p *Player) Speed() float64 {
	return p.speed
}

// Policy returns how blocked moves are resolved.
func (p *Player) Policy() Policy {
	return p.policy
}

// Move tries to step once in direction d. Only the walls on side d are
// consulted, so a single tick never moves diagonally.
func (p *Player) Move(d maze.Direction, walls Walls) Outcome {
	if !d.Valid() {
		return Idle
	}

	dx, dy := d.Delta()
	cur := p.Rect()
	tentative := cur.Translate(float64(dx)*p.speed, float64(dy)*p.speed)

	blockers := walls.Blocking(tentative, d)
	if len(blockers) == 0 && p.bounds.Contains(tentative) {
		p.pos = tentative.Min()
		return Moved
	}

	switch p.policy {
	case PolicyBounce:
		back := cur.Translate(-float64(dx*bounceFactor)*p.speed, -float64(dy*bounceFactor)*p.speed)
		p.pos = p.bounds.ClampInside(back).Min()
	default:
		p.pos = p.settle(cur, tentative, blockers, d, walls).Min()
	}
	return Blocked
}

// settle finds the position closest to tentative that touches, but does not
// overlap, the walls on side d and stays inside the play area. It falls back
// to cur when no such position turns up.
func (p *Player) settle(cur, tentative geom.Rect, blockers []*collision.Collider, d maze.Direction, walls Walls) geom.Rect {
	candidate := tentative
	for i := 0; i < maxPushes; i++ {
		candidate = p.bounds.ClampInside(flush(candidate, blockers, d))
		blockers = walls.Blocking(candidate, d)
		if len(blockers) == 0 {
			return candidate
		}
	}
	return cur
}

// flush moves r back along d's axis until its leading edge meets the
// trailing edge of the farthest blocker.
func flush(r geom.Rect, blockers []*collision.Collider, d maze.Direction) geom.Rect {
	for _, b := range blockers {
		switch d {
		case maze.Top:
			if b.Rect.MaxY() > r.Y {
				r.Y = b.Rect.MaxY()
			}
		case maze.Bottom:
			if b.Rect.MinY() < r.MaxY() {
				r.Y = b.Rect.MinY() - r.H
			}
		case maze.Left:
			if b.Rect.MaxX() > r.X {
				r.X = b.Rect.MaxX()
			}
		case maze.Right:
			if b.Rect.MinX() < r.MaxX() {
				r.X = b.Rect.MinX() - r.W
			}
		}
	}
	return r
}

// Reaches reports whether the player's bounding box overlaps goal.
// Touching edges do not count.
func (p *Player) Reaches(goal geom.Rect) bool {
	return p.Rect().Overlaps(goal)
}
