package game

import (
	"fmt"
	"log"
	"time"

	"chosenoffset.com/mazewalk/internal/config"
	"chosenoffset.com/mazewalk/internal/entity"
	"chosenoffset.com/mazewalk/internal/render"
	"chosenoffset.com/mazewalk/internal/world/maze"
)

// Manager drives the endless generate, play, win cycle. The engine calls
// Update and Draw every tick; a finished run is replaced in place, never
// by calling back into the loop.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *config.Config
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Clock        Clock
	Sound        Sound
	Run          *Run

	baseSeed     int64
	playerSprite render.Image
}

// NewManager creates a manager with its first run ready to generate.
// A nil clock or sound falls back to SystemClock and NoSound.
func NewManager(cfg *config.Config, r render.Renderer, input render.InputManager, clock Clock, sound Sound) (*Manager, error) {
	if clock == nil {
		clock = SystemClock{}
	}
	if sound == nil {
		sound = NoSound{}
	}

	seed := cfg.Maze.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := &Manager{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Config:       cfg,
		Renderer:     r,
		InputMgr:     input,
		Clock:        clock,
		Sound:        sound,
		baseSeed:     seed,
	}
	if err := m.startRun(0); err != nil {
		return nil, err
	}
	m.Sound.StartMusic()
	return m, nil
}

// BaseSeed returns the seed of the first run. Run n uses BaseSeed()+n.
func (m *Manager) BaseSeed() int64 {
	return m.baseSeed
}

func (m *Manager) startRun(index int) error {
	run, err := NewRun(m.Config, index, m.baseSeed+int64(index))
	if err != nil {
		return fmt.Errorf("failed to start run %d: %w", index, err)
	}
	m.Run = run
	log.Printf("run %s: #%d seed %d, %dx%d cells, goal (%d,%d), speed %v, policy %s",
		run.ID, index+1, run.Seed, run.Grid.Cols(), run.Grid.Rows(), run.Goal.X, run.Goal.Y,
		run.Player.Speed(), run.Player.Policy())
	return nil
}

// Update advances the current run by one tick.
func (m *Manager) Update() error {
	if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrTerminated
	}

	switch m.Run.State {
	case StateGenerating:
		m.Run.generate(m.Config.Maze.StepsPerTick)
	case StatePlaying:
		outcome, won := m.Run.step(m.readDirection())
		if outcome == entity.Blocked && m.Run.lastOutcome != entity.Blocked {
			m.Sound.PlayBump()
		}
		m.Run.lastOutcome = outcome
		if won {
			m.Sound.PlayVictory()
		}
	case StateWon:
		// Hold the banner on screen before moving on.
		if !m.Run.bannerShown {
			return nil
		}
		m.Clock.Sleep(m.Config.Maze.VictoryDelay.Duration)
		return m.startRun(m.Run.Index + 1)
	}
	return nil
}

// readDirection returns the held movement key, checked in the order
// up, down, right, left. Arrows and WASD are equivalent.
func (m *Manager) readDirection() maze.Direction {
	switch {
	case m.InputMgr.IsKeyPressed(render.KeyUp) || m.InputMgr.IsKeyPressed(render.KeyW):
		return maze.Top
	case m.InputMgr.IsKeyPressed(render.KeyDown) || m.InputMgr.IsKeyPressed(render.KeyS):
		return maze.Bottom
	case m.InputMgr.IsKeyPressed(render.KeyRight) || m.InputMgr.IsKeyPressed(render.KeyD):
		return maze.Right
	case m.InputMgr.IsKeyPressed(render.KeyLeft) || m.InputMgr.IsKeyPressed(render.KeyA):
		return maze.Left
	default:
		return maze.NoDirection
	}
}

// Layout returns the fixed logical size of the play area.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}
