package lander

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lunarcade/internal/core"
	"github.com/vovakirdan/lunarcade/internal/lander"
)

// Visual characters for rendering
const (
	TerrainChar  = '█'
	PadChar      = '═'
	ShipUpright  = '▲'
	ShipRight    = '◥'
	ShipHardR    = '▶'
	ShipLeft     = '◤'
	ShipHardL    = '◀'
	ShipInverted = '▼'
	FlameChar    = '*'
	CrashChar    = '✶'
)

// Render draws the current game state to the screen.
// The simulation runs in world units; rendering scales the virtual
// playfield onto whatever cell grid the terminal provides.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 0 || g.terrain == nil {
		return
	}

	scaleX := float64(w) / g.worldW()
	scaleY := float64(h) / g.worldH()

	g.drawTerrain(dst, scaleX, scaleY)
	g.drawShip(dst, scaleX, scaleY)
	g.drawHUD(dst)
	g.drawOverlays(dst)
}

// drawTerrain fills every column from the surface height down, marking
// the landing pad span.
func (g *Game) drawTerrain(dst *core.Screen, scaleX, scaleY float64) {
	w, h := dst.Width(), dst.Height()

	for cx := 0; cx < w; cx++ {
		worldX := (float64(cx) + 0.5) / scaleX
		height, ok := g.terrain.HeightAt(worldX)
		if !ok {
			continue
		}

		surfaceRow := int(height * scaleY)
		if surfaceRow < 0 {
			surfaceRow = 0
		}
		for cy := surfaceRow; cy < h; cy++ {
			dst.SetColored(cx, cy, TerrainChar, core.ColorGray)
		}

		if math.Abs(worldX-g.terrain.PadX) <= g.terrain.PadHalfW {
			dst.SetColored(cx, surfaceRow, PadChar, core.ColorBrightGreen)
		}
	}
}

// drawShip places the lander glyph and, while flying, the engine flame.
func (g *Game) drawShip(dst *core.Screen, scaleX, scaleY float64) {
	cx := int((g.ship.X + g.ship.Width/2) * scaleX)
	cy := int((g.ship.Y + g.ship.Height/2) * scaleY)

	if g.ship.Phase == lander.PhaseCrashed {
		crashX := int(g.ship.CrashX * scaleX)
		crashY := int(g.ship.CrashY * scaleY)
		dst.SetColored(crashX, crashY, CrashChar, core.ColorBrightRed)
		return
	}

	dst.SetColored(cx, cy, shipGlyph(g.ship.Angle), core.ColorBrightWhite)
	if g.thrusting && g.ship.Phase == lander.PhaseFlying {
		dst.SetColored(cx, cy+1, FlameChar, core.ColorBrightYellow)
	}
}

// shipGlyph picks an orientation glyph from the normalized angle.
// Positive angles tilt the nose toward screen-right.
func shipGlyph(angle float64) rune {
	na := lander.NormalizeAngle(angle)
	switch {
	case na > 112.5 || na < -112.5:
		return ShipInverted
	case na > 67.5:
		return ShipHardR
	case na > 22.5:
		return ShipRight
	case na < -67.5:
		return ShipHardL
	case na < -22.5:
		return ShipLeft
	default:
		return ShipUpright
	}
}

// drawHUD writes the status lines across the top of the screen.
func (g *Game) drawHUD(dst *core.Screen) {
	p := g.prog.Params()

	var top string
	if g.mode == ModeZen {
		top = fmt.Sprintf(" Score: %d  Landings: %d ", g.score, g.landings)
	} else {
		top = fmt.Sprintf(" Score: %d  Level: %d  Lives: %d  Gravity: %.2f ",
			g.score, g.prog.Level, g.prog.Lives, p.Gravity)
	}
	dst.DrawText(1, 0, top)

	fuelColor := core.ColorBrightGreen
	if g.ship.Fuel < 25 {
		fuelColor = core.ColorBrightRed
	}
	dst.DrawTextColored(1, 1, fmt.Sprintf(" Fuel: %3.0f ", g.ship.Fuel), fuelColor)

	telemetry := fmt.Sprintf(" VX: %+5.2f  VY: %+5.2f  Angle: %+6.1f ",
		g.ship.VX, g.ship.VY, lander.NormalizeAngle(g.ship.Angle))
	dst.DrawText(13, 1, telemetry)
}

// drawOverlays renders the phase and session message boxes.
func (g *Game) drawOverlays(dst *core.Screen) {
	switch {
	case g.won:
		g.drawCenteredMessage(dst, "MISSION COMPLETE",
			fmt.Sprintf("Score: %d  |  Press R to fly again", g.score))
	case g.gameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.ship.Phase == lander.PhaseLanded:
		g.drawCenteredMessage(dst, "TOUCHDOWN",
			fmt.Sprintf("Landed in %.1fs  |  Press Enter for the next pad", g.ship.LandingTime))
	case g.ship.Phase == lander.PhaseCrashed:
		g.drawCenteredMessage(dst, "CRASHED",
			fmt.Sprintf("Lives left: %d  |  Press Enter to retry", g.prog.Lives))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
