package game

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/mazewalk/internal/config"
	"chosenoffset.com/mazewalk/internal/render"
	"chosenoffset.com/mazewalk/internal/world/maze"
)

type fakeImage struct{ w, h int }

func (i *fakeImage) Size() (int, int)                                 { return i.w, i.h }
func (i *fakeImage) Fill(color.Color)                                 {}
func (i *fakeImage) DrawImage(render.Image, *render.DrawImageOptions) {}

type fakeGeoM struct{ tx, ty float64 }

func (g *fakeGeoM) Translate(tx, ty float64) { g.tx += tx; g.ty += ty }

type rect struct{ x, y, w, h float32 }

type fakeRenderer struct {
	banners []string
	texts   []string
	sprites int
	fills   []rect
	strokes []rect
}

func (r *fakeRenderer) NewImageFromImage(src image.Image) render.Image {
	r.sprites++
	b := src.Bounds()
	return &fakeImage{w: b.Dx(), h: b.Dy()}
}
func (r *fakeRenderer) FillRect(_ render.Image, x, y, w, h float32, _ color.Color) {
	r.fills = append(r.fills, rect{x, y, w, h})
}
func (r *fakeRenderer) StrokeRect(_ render.Image, x, y, w, h, _ float32, _ color.Color) {
	r.strokes = append(r.strokes, rect{x, y, w, h})
}
func (r *fakeRenderer) StrokeLine(render.Image, float32, float32, float32, float32, float32, color.Color) {
}
func (r *fakeRenderer) DrawText(_ render.Image, text string, _, _ int, _ color.Color, _ float64) {
	r.texts = append(r.texts, text)
}
func (r *fakeRenderer) MeasureText(text string, scale float64) (int, int) { return len(text) * 6, 16 }
func (r *fakeRenderer) DrawBanner(_ render.Image, text string, _, _ float64, _ color.Color) {
	r.banners = append(r.banners, text)
}

// reset forgets the calls recorded so far.
func (r *fakeRenderer) reset() {
	r.banners, r.texts, r.fills, r.strokes = nil, nil, nil, nil
}

type fakeInput struct {
	held map[render.Key]bool
	tap  map[render.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[render.Key]bool{}, tap: map[render.Key]bool{}}
}

func (in *fakeInput) IsKeyPressed(k render.Key) bool     { return in.held[k] }
func (in *fakeInput) IsKeyJustPressed(k render.Key) bool { return in.tap[k] }

type fakeClock struct{ slept []time.Duration }

func (c *fakeClock) Sleep(d time.Duration) { c.slept = append(c.slept, d) }

type fakeSound struct{ music, bumps, victories int }

func (s *fakeSound) StartMusic()  { s.music++ }
func (s *fakeSound) PlayBump()    { s.bumps++ }
func (s *fakeSound) PlayVictory() { s.victories++ }

type harness struct {
	m      *Manager
	r      *fakeRenderer
	in     *fakeInput
	clock  *fakeClock
	sound  *fakeSound
	screen *fakeImage
}

func init() {
	render.NewGeoM = func() render.GeoM { return &fakeGeoM{} }
}

// newHarness builds a manager over a cols x rows maze of 50px tiles.
func newHarness(t *testing.T, cols, rows int) *harness {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Window.Width = cols*50 + 2
	cfg.Window.Height = rows*50 + 2
	cfg.Maze.Seed = 7
	require.NoError(t, cfg.Validate())

	h := &harness{
		r:      &fakeRenderer{},
		in:     newFakeInput(),
		clock:  &fakeClock{},
		sound:  &fakeSound{},
		screen: &fakeImage{w: cfg.Window.Width, h: cfg.Window.Height},
	}
	m, err := NewManager(cfg, h.r, h.in, h.clock, h.sound)
	require.NoError(t, err)
	h.m = m
	return h
}

// tick runs one Update and one Draw, like the engine does.
func (h *harness) tick(t *testing.T) {
	t.Helper()
	require.NoError(t, h.m.Update())
	h.m.Draw(h.screen)
}

func (h *harness) generate(t *testing.T) {
	t.Helper()
	limit := 4*h.m.Run.Grid.Len() + 2
	for i := 0; i < limit && h.m.Run.State == StateGenerating; i++ {
		h.tick(t)
	}
	require.Equal(t, StatePlaying, h.m.Run.State)
}

func TestNewManagerStartsGenerating(t *testing.T) {
	h := newHarness(t, 4, 3)

	run := h.m.Run
	assert.Equal(t, StateGenerating, run.State)
	assert.Equal(t, 0, run.Index)
	assert.Equal(t, int64(7), run.Seed)
	assert.Equal(t, 1, h.sound.music)
	assert.Zero(t, run.Walls.Len(), "no colliders before the maze is done")

	assert.GreaterOrEqual(t, run.Goal.X, 2)
	assert.LessOrEqual(t, run.Goal.X, 3)
	assert.GreaterOrEqual(t, run.Goal.Y, 1)
	assert.LessOrEqual(t, run.Goal.Y, 2)
	assert.Equal(t, float64(run.Goal.X*50+3), run.GoalRect.X)
	assert.Equal(t, float64(run.Goal.Y*50+3), run.GoalRect.Y)
	assert.Equal(t, 47.0, run.GoalRect.W)
}

func TestGenerationBuildsCollidersOnce(t *testing.T) {
	h := newHarness(t, 4, 3)
	h.generate(t)

	run := h.m.Run
	report := run.Grid.Audit()
	assert.True(t, report.IsPerfect(), report.String())

	built := run.Walls.Len()
	assert.Positive(t, built)

	for i := 0; i < 30; i++ {
		h.tick(t)
	}
	assert.Equal(t, built, run.Walls.Len())
}

func TestStepsPerTickSpeedsUpGeneration(t *testing.T) {
	h := newHarness(t, 4, 3)
	h.m.Config.Maze.StepsPerTick = 1000

	h.tick(t)
	assert.Equal(t, StatePlaying, h.m.Run.State)
}

func TestGenerationIsSeeded(t *testing.T) {
	a := newHarness(t, 5, 4)
	b := newHarness(t, 5, 4)
	a.generate(t)
	b.generate(t)

	assert.Equal(t, a.m.Run.Goal, b.m.Run.Goal)
	assert.Equal(t, a.m.Run.Generator.Carved(), b.m.Run.Generator.Carved())
}

func TestBumpPlaysOncePerContact(t *testing.T) {
	h := newHarness(t, 3, 3)
	h.generate(t)

	start := h.m.Run.Player.Position()
	h.in.held[render.KeyUp] = true
	for i := 0; i < 20; i++ {
		h.tick(t)
	}

	assert.Equal(t, 1, h.sound.bumps)
	assert.Equal(t, start.X, h.m.Run.Player.Position().X)
	assert.Equal(t, 3.0, h.m.Run.Player.Position().Y)

	// Let go and push again: a new contact.
	h.in.held[render.KeyUp] = false
	h.tick(t)
	h.in.held[render.KeyUp] = true
	h.tick(t)
	assert.Equal(t, 2, h.sound.bumps)
}

func TestInputPriority(t *testing.T) {
	h := newHarness(t, 3, 3)
	h.generate(t)

	start := h.m.Run.Player.Position()
	h.in.held[render.KeyDown] = true
	h.in.held[render.KeyLeft] = true
	h.tick(t)

	pos := h.m.Run.Player.Position()
	assert.Equal(t, start.X, pos.X, "down wins over left")
	assert.Greater(t, pos.Y, start.Y)

	h.in.held = map[render.Key]bool{render.KeyD: true}
	h.tick(t)
	assert.Greater(t, h.m.Run.Player.Position().X, start.X)
}

func TestVictoryThenNewRun(t *testing.T) {
	// On a single cell the goal covers the spawn point.
	h := newHarness(t, 1, 1)
	h.generate(t)
	first := h.m.Run

	h.tick(t)
	assert.Equal(t, StateWon, first.State)
	assert.Equal(t, 1, h.sound.victories)
	assert.Equal(t, []string{VictoryText}, h.r.banners)
	assert.Empty(t, h.clock.slept, "the victory frame is drawn before pausing")

	h.tick(t)
	require.Len(t, h.clock.slept, 1)
	assert.Equal(t, 5*time.Second, h.clock.slept[0])
	assert.Equal(t, 1, h.sound.victories)

	next := h.m.Run
	assert.NotSame(t, first, next)
	assert.NotEqual(t, first.ID, next.ID)
	assert.Equal(t, 1, next.Index)
	assert.Equal(t, first.Seed+1, next.Seed)
	assert.Equal(t, StateGenerating, next.State)
	assert.Zero(t, next.Walls.Len())
}

func TestWonWaitsForDraw(t *testing.T) {
	h := newHarness(t, 1, 1)
	h.generate(t)
	h.tick(t)
	require.Equal(t, StateWon, h.m.Run.State)

	h.r.banners = nil
	run := h.m.Run
	run.bannerShown = false
	for i := 0; i < 3; i++ {
		require.NoError(t, h.m.Update())
	}
	assert.Same(t, run, h.m.Run)
	assert.Empty(t, h.clock.slept)
}

func TestManyRunsDoNotNest(t *testing.T) {
	h := newHarness(t, 1, 1)
	for i := 0; i < 50; i++ {
		h.generate(t)
		h.tick(t) // win
		h.tick(t) // pause and restart
	}
	assert.Equal(t, 50, h.m.Run.Index)
	assert.Equal(t, 50, h.sound.victories)
	assert.Len(t, h.clock.slept, 50)
}

func TestEscapeTerminates(t *testing.T) {
	h := newHarness(t, 2, 2)
	h.in.tap[render.KeyEscape] = true
	assert.ErrorIs(t, h.m.Update(), render.ErrTerminated)
}

func TestHUDShowsRun(t *testing.T) {
	h := newHarness(t, 2, 2)
	h.m.Draw(h.screen)
	require.NotEmpty(t, h.r.texts)
	assert.Equal(t, "run 1  seed 7  generating", h.r.texts[len(h.r.texts)-1])
}

func TestPlayerSpriteIsCreatedOnce(t *testing.T) {
	h := newHarness(t, 3, 3)
	h.generate(t)
	for i := 0; i < 5; i++ {
		h.tick(t)
	}
	assert.Equal(t, 1, h.r.sprites)
}

func TestTimeSeedWhenUnset(t *testing.T) {
	cfg := config.DefaultConfig()
	m, err := NewManager(cfg, &fakeRenderer{}, newFakeInput(), &fakeClock{}, nil)
	require.NoError(t, err)
	assert.NotZero(t, m.BaseSeed())
	assert.Equal(t, 24, m.Run.Grid.Cols())
	assert.Equal(t, 18, m.Run.Grid.Rows())
}

func TestCursorOutlineAfterGeneration(t *testing.T) {
	h := newHarness(t, 3, 3)
	h.m.Draw(h.screen)
	assert.Empty(t, h.r.strokes, "the cursor is filled while generating")

	h.generate(t)
	h.r.reset()
	h.m.Draw(h.screen)
	require.Len(t, h.r.strokes, 1)
	cur := h.m.Run.Generator.Current()
	assert.Equal(t, rect{float32(cur.X) * 50, float32(cur.Y) * 50, 50, 50}, h.r.strokes[0])
}

func TestHUDBackingFitsText(t *testing.T) {
	h := newHarness(t, 3, 3)
	h.generate(t)
	h.in.held[render.KeyDown] = true
	h.tick(t)
	h.tick(t)

	h.r.reset()
	h.m.Draw(h.screen)
	line := HUDLine(h.m.Run)
	assert.Equal(t, "run 1  seed 7  playing  ticks 2", line)
	assert.Equal(t, []string{line}, h.r.texts)

	backing := rect{hudX - hudPad, hudY - hudPad, float32(len(line)*6 + 2*hudPad), 16 + 2*hudPad}
	assert.Contains(t, h.r.fills, backing)
}

// Thick walls on a small tile still leave the spawn point in open floor,
// and walking never ends a tick inside a wall ahead of the player.
func TestPlayerStaysClearOfWalls(t *testing.T) {
	for _, tc := range []struct {
		tile      int
		thickness float64
	}{
		{50, 3},
		{50, 12},
		{20, 4},
		{16, 3},
	} {
		cfg := config.DefaultConfig()
		cfg.Maze.TileSize = tc.tile
		cfg.Maze.WallThickness = tc.thickness
		cfg.Maze.Seed = 3
		cfg.Maze.StepsPerTick = 100000
		cfg.Window.Width = tc.tile*4 + 2
		cfg.Window.Height = tc.tile*4 + 2
		require.NoError(t, cfg.Validate())

		in := newFakeInput()
		m, err := NewManager(cfg, &fakeRenderer{}, in, &fakeClock{}, &fakeSound{})
		require.NoError(t, err)
		require.NoError(t, m.Update())
		require.Equal(t, StatePlaying, m.Run.State)

		for _, d := range maze.Directions {
			assert.False(t, m.Run.Walls.CollidesInDirection(m.Run.Player.Rect(), d),
				"tile %d thickness %v: spawn inside a %s wall", tc.tile, tc.thickness, d)
		}

		keys := map[maze.Direction]render.Key{
			maze.Top: render.KeyUp, maze.Bottom: render.KeyDown,
			maze.Left: render.KeyLeft, maze.Right: render.KeyRight,
		}
		rng := rand.New(rand.NewSource(int64(tc.tile)))
		for i := 0; i < 2000 && m.Run.State == StatePlaying; i++ {
			d := maze.Directions[rng.Intn(len(maze.Directions))]
			in.held = map[render.Key]bool{keys[d]: true}
			require.NoError(t, m.Update())
			require.False(t, m.Run.Walls.CollidesInDirection(m.Run.Player.Rect(), d),
				"tile %d thickness %v: inside a %s wall at tick %d", tc.tile, tc.thickness, d, i)
		}
	}
}
