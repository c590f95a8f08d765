package game

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/google/uuid"

	"chosenoffset.com/mazewalk/internal/config"
	"chosenoffset.com/mazewalk/internal/core/collision"
	"chosenoffset.com/mazewalk/internal/core/geom"
	"chosenoffset.com/mazewalk/internal/entity"
	"chosenoffset.com/mazewalk/internal/world/maze"
)

// goalInset is how far the goal square sits inside its cell.
const goalInset = 3

// spawnOffset pulls the player's spawn up and left of the first cell's center.
const spawnOffset = 12

// Run holds everything that belongs to one maze, from the first carve to
// the victory banner. A new Run is built for every maze.
type Run struct {
	ID    uuid.UUID
	Index int
	Seed  int64
	State RunState

	Grid      *maze.Grid
	Generator *maze.Generator
	Walls     *collision.Set
	Player    *entity.Player
	Goal      maze.Coord
	GoalRect  geom.Rect

	tile        float64
	ticks       int
	lastOutcome entity.Outcome
	bannerShown bool
}

// NewRun lays out an enclosed grid for cfg and picks the goal cell.
// Generation starts on the first Update.
func NewRun(cfg *config.Config, index int, seed int64) (*Run, error) {
	tile := float64(cfg.Maze.TileSize)

	grid, err := maze.NewGrid(cfg.Cols(), cfg.Rows())
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}

	walls, err := collision.NewSet(tile, cfg.Maze.WallThickness)
	if err != nil {
		return nil, fmt.Errorf("failed to create collider set: %w", err)
	}

	size := tile / 2
	spawn := spawnPosition(tile, size, cfg.Maze.WallThickness)
	player, err := entity.NewPlayer(entity.PlayerConfig{
		Start:  geom.Point{X: spawn, Y: spawn},
		Size:   size,
		Speed:  cfg.Player.Speed,
		Bounds: geom.NewRect(0, 0, float64(cfg.Window.Width), float64(cfg.Window.Height)),
		Policy: cfg.PlayerPolicy(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))

	cols, rows := grid.Cols(), grid.Rows()
	goal := maze.Coord{
		X: cols/2 + rng.Intn(cols-cols/2),
		Y: rows/2 + rng.Intn(rows-rows/2),
	}

	return &Run{
		ID:        uuid.New(),
		Index:     index,
		Seed:      seed,
		State:     StateGenerating,
		Grid:      grid,
		Generator: maze.NewGenerator(grid, rng),
		Walls:     walls,
		Player:    player,
		Goal:      goal,
		GoalRect: geom.NewRect(
			float64(goal.X)*tile+goalInset,
			float64(goal.Y)*tile+goalInset,
			tile-goalInset,
			tile-goalInset,
		),
		tile: tile,
	}, nil
}

// spawnPosition places the player spawnOffset up and left of the first
// cell's center, pulled back into the cell's open interior on small tiles.
func spawnPosition(tile, size, thickness float64) float64 {
	p := tile/2 - spawnOffset
	if hi := tile - thickness - size; p > hi {
		p = hi
	}
	if p < thickness {
		p = thickness
	}
	return p
}

// generate advances the generator up to steps times. When the maze is done
// it builds the colliders and switches to StatePlaying.
func (r *Run) generate(steps int) {
	if r.State != StateGenerating {
		return
	}
	for i := 0; i < steps; i++ {
		if r.Generator.Step() == maze.Done {
			r.finishGeneration()
			return
		}
	}
}

func (r *Run) finishGeneration() {
	n := r.Walls.MaterializeGrid(r.Grid)
	report := r.Grid.Audit()

	log.Printf("run %s: maze ready after %d steps (%d passages, %d backtracks, %d colliders)",
		r.ID, r.Generator.Steps(), len(r.Generator.Carved()), r.Generator.Backtracks(), n)
	if !report.IsPerfect() {
		log.Printf("run %s: maze audit failed: %s", r.ID, report)
	}

	r.State = StatePlaying
}

// step moves the player once in d and reports what happened. It returns
// true on the tick the goal is first reached.
func (r *Run) step(d maze.Direction) (entity.Outcome, bool) {
	if r.State != StatePlaying {
		return entity.Idle, false
	}
	r.ticks++

	outcome := r.Player.Move(d, r.Walls)
	if r.Player.Reaches(r.GoalRect) {
		r.State = StateWon
		log.Printf("run %s: goal reached at (%d,%d) after %d ticks", r.ID, r.Goal.X, r.Goal.Y, r.ticks)
		return outcome, true
	}
	return outcome, false
}

// Ticks returns how many ticks the player has spent walking.
func (r *Run) Ticks() int {
	return r.ticks
}

// Tile returns the cell edge length in pixels.
func (r *Run) Tile() float64 {
	return r.tile
}
