package game

import (
	"fmt"

	"chosenoffset.com/mazewalk/internal/core/walls"
	"chosenoffset.com/mazewalk/internal/placeholders"
	"chosenoffset.com/mazewalk/internal/render"
	"chosenoffset.com/mazewalk/internal/world/maze"
)

const (
	wallWidth   = 2
	cursorWidth = 3
	stackInset  = 6
	hudX, hudY  = 4, 4
	hudPad      = 2
)

// VictoryText is shown centered on screen once the goal is reached.
const VictoryText = "Congratulations!"

// Draw renders the current run to the screen.
func (m *Manager) Draw(screen render.Image) {
	run := m.Run
	screen.Fill(placeholders.Palette.Background)

	m.drawCells(screen, run)
	m.drawWalls(screen, run)

	switch run.State {
	case StateGenerating:
		m.drawStack(screen, run)
	default:
		m.drawCursor(screen, run)
		m.drawGoal(screen, run)
		m.drawPlayer(screen, run)
	}

	if m.Config.Debug.ShowColliders {
		m.drawColliders(screen, run)
	}
	m.drawHUD(screen, run)

	if run.State == StateWon {
		w, h := screen.Size()
		m.Renderer.DrawBanner(screen, VictoryText, float64(w)/2, float64(h)/2, placeholders.Palette.Text)
		run.bannerShown = true
	}
}

func (m *Manager) drawCells(screen render.Image, run *Run) {
	tile := float32(run.Tile())
	cells := run.Grid.Cells()
	for i := range cells {
		c := &cells[i]
		if !c.Visited() {
			continue
		}
		m.Renderer.FillRect(screen, float32(c.X)*tile, float32(c.Y)*tile, tile, tile, placeholders.Palette.Visited)
	}
}

// drawWalls strokes the standing walls as merged straight runs.
func (m *Manager) drawWalls(screen render.Image, run *Run) {
	clr := placeholders.Palette.Wall
	for _, seg := range walls.FromGrid(run.Grid, run.Tile()) {
		m.Renderer.StrokeLine(screen, float32(seg.A.X), float32(seg.A.Y), float32(seg.B.X), float32(seg.B.Y), wallWidth, clr)
	}
}

func (m *Manager) drawStack(screen render.Image, run *Run) {
	tile := float32(run.Tile())
	inner := tile - 2*stackInset

	for i, c := range run.Generator.Stack() {
		m.Renderer.FillRect(screen, float32(c.X)*tile+stackInset, float32(c.Y)*tile+stackInset,
			inner, inner, placeholders.StackColor(i))
	}

	if cur := run.Generator.Current(); cur != nil {
		m.Renderer.FillRect(screen, float32(cur.X)*tile, float32(cur.Y)*tile, tile, tile, placeholders.Palette.Cursor)
	}
}

// drawCursor outlines the cell the generator finished on.
func (m *Manager) drawCursor(screen render.Image, run *Run) {
	cur := run.Generator.Current()
	if cur == nil {
		return
	}
	tile := float32(run.Tile())
	m.Renderer.StrokeRect(screen, float32(cur.X)*tile, float32(cur.Y)*tile, tile, tile, cursorWidth, placeholders.Palette.Cursor)
}

func (m *Manager) drawGoal(screen render.Image, run *Run) {
	g := run.GoalRect
	m.Renderer.FillRect(screen, float32(g.X), float32(g.Y), float32(g.W), float32(g.H), placeholders.Palette.Goal)
}

func (m *Manager) drawPlayer(screen render.Image, run *Run) {
	r := run.Player.Rect()
	if m.playerSprite == nil {
		m.playerSprite = m.Renderer.NewImageFromImage(placeholders.PlayerSprite(int(r.W)))
	}

	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Translate(r.X, r.Y)
	screen.DrawImage(m.playerSprite, opts)
}

func (m *Manager) drawColliders(screen render.Image, run *Run) {
	for _, d := range maze.Directions {
		for _, c := range run.Walls.Colliders(d) {
			m.Renderer.FillRect(screen, float32(c.Rect.X), float32(c.Rect.Y),
				float32(c.Rect.W), float32(c.Rect.H), placeholders.Palette.Collider)
		}
	}
}

// HUDLine is the status text for run.
func HUDLine(run *Run) string {
	line := fmt.Sprintf("run %d  seed %d  %s", run.Index+1, run.Seed, run.State)
	if run.State != StateGenerating {
		line += fmt.Sprintf("  ticks %d", run.Ticks())
	}
	return line
}

func (m *Manager) drawHUD(screen render.Image, run *Run) {
	line := HUDLine(run)
	w, h := m.Renderer.MeasureText(line, 1)
	m.Renderer.FillRect(screen, hudX-hudPad, hudY-hudPad, float32(w+2*hudPad), float32(h+2*hudPad),
		placeholders.Palette.HUDBacking)
	m.Renderer.DrawText(screen, line, hudX, hudY, placeholders.Palette.Text, 1)
}
