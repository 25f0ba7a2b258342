package dodge

import (
	"math"

	"github.com/vovakirdan/tui-dodge/internal/arcade"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
)

// Render draws the current game state to the screen. The world is scaled
// to fill the whole screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.SetBackground(g.cfg.World.Background)

	s := g.sess
	s.obstacles.EachLive(func(_ int, o *Obstacle) {
		dst.DrawRect(g.cellRect(dst, o.Body.Bounds()), ObstacleChar, core.ColorBrightRed)
	})
	if s.playerVisible {
		dst.DrawRect(g.cellRect(dst, s.player.Bounds()), PlayerChar, core.ColorBrightYellow)
	}

	// Labels stay on screen. Labels that land on the same row are pushed down.
	used := make(map[int]bool)
	for _, l := range []arcade.Label{s.scoreLabel, s.prompt} {
		if !l.Visible {
			continue
		}
		x, y := g.cell(dst, l.Pos)
		x = core.Clamp(x, 0, core.Max(dst.Width()-len(l.Text), 0))
		y = core.Clamp(y, 0, dst.Height()-1)
		for used[y] {
			y++
		}
		used[y] = true
		dst.DrawText(x, y, l.Text, core.ColorBrightWhite)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// cell maps a world point to the screen cell containing it.
func (g *Game) cell(dst *core.Screen, p arcade.Vec2) (int, int) {
	x := int(math.Floor(p.X * float64(dst.Width()) / g.world.W))
	y := int(math.Floor(p.Y * float64(dst.Height()) / g.world.H))
	return x, y
}

// cellRect maps a world box to the cells it covers. Any non-empty box
// covers at least one cell.
func (g *Game) cellRect(dst *core.Screen, b arcade.Box) core.Rect {
	sx := float64(dst.Width()) / g.world.W
	sy := float64(dst.Height()) / g.world.H
	x0 := int(math.Floor(b.X * sx))
	y0 := int(math.Floor(b.Y * sy))
	x1 := int(math.Ceil(b.Right() * sx))
	y1 := int(math.Ceil(b.Bottom() * sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorGray)
}
