package lander

import (
	"github.com/vovakirdan/lunarcade/internal/lander"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Level    int
	Lives    int
	Score    int
	Landings int

	Phase lander.Phase

	X, Y     float64
	VX, VY   float64
	Angle    float64
	Fuel     float64
	PadX     float64
	Gravity  float64
	FuelRate float64

	DebounceTicks int
	GameOver      bool
	Won           bool
	Paused        bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	p := g.prog.Params()
	return Snapshot{
		Tick:          g.tick,
		Mode:          string(g.mode),
		Level:         g.prog.Level,
		Lives:         g.prog.Lives,
		Score:         g.score,
		Landings:      g.landings,
		Phase:         g.ship.Phase,
		X:             g.ship.X,
		Y:             g.ship.Y,
		VX:            g.ship.VX,
		VY:            g.ship.VY,
		Angle:         g.ship.Angle,
		Fuel:          g.ship.Fuel,
		PadX:          g.terrain.PadX,
		Gravity:       p.Gravity,
		FuelRate:      p.FuelRate,
		DebounceTicks: g.debounceTicks,
		GameOver:      g.gameOver,
		Won:           g.won,
		Paused:        g.paused,
	}
}
