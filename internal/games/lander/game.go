// Package lander adapts the lunar lander simulation to the arcade
// platform. The player steers a ship down to a landing pad against
// gravity; each safe touchdown raises the difficulty.
package lander

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/lunarcade/internal/config"
	"github.com/vovakirdan/lunarcade/internal/core"
	"github.com/vovakirdan/lunarcade/internal/lander"
	"github.com/vovakirdan/lunarcade/internal/registry"
)

// Mode selects the session rules for a game instance.
type Mode string

const (
	// ModeCampaign plays the full progression: difficulty ramps after
	// every landing and the session ends at the win level.
	ModeCampaign Mode = "campaign"
	// ModeZen disables the difficulty ramp and the win level for
	// open-ended practice.
	ModeZen Mode = "zen"
)

// Game implements the lunar lander game on top of the pure simulation.
type Game struct {
	mode       Mode
	configPath string
	preset     config.DifficultyPreset

	cfg     config.LanderConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	dt      float64

	prog    *lander.Progression
	terrain *lander.Profile
	ship    *lander.Lander

	tick          uint64
	score         int
	landings      int
	debounceTicks int
	thrusting     bool
	gameOver      bool
	won           bool
	paused        bool
}

// Package-level settings applied to instances created after the call.
// The CLI sets these from flags before the registry builds the game.
var (
	sharedConfigPath string
	sharedPreset     = config.DifficultyNormal
)

// SetConfigPath overrides the configuration search path for new instances.
func SetConfigPath(path string) {
	sharedConfigPath = path
}

// SetDifficultyPreset selects a named difficulty preset for new instances.
// Unknown or empty names fall back to normal.
func SetDifficultyPreset(preset string) {
	switch config.DifficultyPreset(preset) {
	case config.DifficultyEasy, config.DifficultyHard, config.DifficultyFixed:
		sharedPreset = config.DifficultyPreset(preset)
	default:
		sharedPreset = config.DifficultyNormal
	}
}

// New creates a campaign-mode game instance.
func New() *Game {
	return &Game{mode: ModeCampaign, configPath: sharedConfigPath, preset: sharedPreset}
}

// NewZen creates a zen-mode game instance with a fixed difficulty.
func NewZen() *Game {
	return &Game{mode: ModeZen, configPath: sharedConfigPath, preset: sharedPreset}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "lander_zen"
	}
	return "lander"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Lunar Lander (Zen)"
	}
	return "Lunar Lander"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	loaded, err := config.LoadLander(g.configPath)
	if err != nil {
		loaded = config.DefaultLanderConfig()
	}
	config.ApplyLanderPreset(&loaded, g.preset)
	if g.mode == ModeZen {
		// Zen mode never escalates and never ends on its own.
		loaded.Progression.GravityStep = 0
		loaded.Progression.FuelStep = 0
		loaded.Progression.WinLevel = 0
	}
	g.cfg = loaded

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.dt = 1.0 / float64(tickRate)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.prog = lander.NewProgression(loaded.Params(), loaded.Ramp())
	g.ship = lander.NewLander(g.worldW())
	g.newTerrain()

	g.tick = 0
	g.score = 0
	g.landings = 0
	g.debounceTicks = 0
	g.thrusting = false
	g.gameOver = false
	g.won = false
	g.paused = false
}

func (g *Game) worldW() float64 { return g.cfg.World.Width }
func (g *Game) worldH() float64 { return g.cfg.World.Height }

// newTerrain rolls a fresh pad position and regenerates the terrain,
// then respawns the ship above it.
func (g *Game) newTerrain() {
	padX := lander.RandomPadX(g.worldW(), g.rng)
	g.terrain = lander.GenerateTerrain(g.worldW(), g.worldH(), padX, g.cfg.TerrainParams(), g.rng)
	g.ship.Reset(g.worldW())
}

// debounceWindow converts the configured post-touchdown input delay
// into a tick count.
func (g *Game) debounceWindow() int {
	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return int(g.cfg.Progression.InputDelay * float64(tickRate))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver || g.won {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	switch g.ship.Phase {
	case lander.PhaseFlying:
		g.stepFlying(in)
	case lander.PhaseLanded, lander.PhaseCrashed:
		g.stepResting(in)
	}

	return core.StepResult{State: g.State()}
}

// stepFlying runs one simulation tick and reacts to touchdown events.
func (g *Game) stepFlying(in core.InputFrame) {
	controls := lander.Controls{
		Thrust:      in.Has(core.ActionThrust) || in.Has(core.ActionUp),
		RotateLeft:  in.Has(core.ActionRotateLeft),
		RotateRight: in.Has(core.ActionRotateRight),
	}

	ev := g.ship.Update(g.dt, controls, g.terrain, g.prog.Params())
	g.thrusting = ev.Thrusting

	switch {
	case ev.Landed:
		g.landings++
		g.score += 100 + int(g.ship.Fuel)
		if g.prog.OnLanded() == lander.StatusWon {
			g.won = true
			return
		}
		g.debounceTicks = g.debounceWindow()
	case ev.Crashed:
		if g.prog.OnCrashed() == lander.StatusGameOver {
			g.gameOver = true
			return
		}
		g.debounceTicks = g.debounceWindow()
	}
}

// stepResting waits out the input debounce after touchdown, then lets
// Confirm advance to the next attempt. A landing moves to the next
// level on fresh terrain; a crash retries the current level.
func (g *Game) stepResting(in core.InputFrame) {
	g.thrusting = false

	if g.debounceTicks > 0 {
		g.debounceTicks--
		return
	}

	if in.Has(core.ActionConfirm) {
		g.newTerrain()
	}
}

// restart begins a fresh session, keeping the RNG stream so terrain
// differs from the previous run.
func (g *Game) restart() {
	g.prog.Reset()
	g.tick = 0
	g.score = 0
	g.landings = 0
	g.debounceTicks = 0
	g.thrusting = false
	g.gameOver = false
	g.won = false
	g.paused = false
	g.newTerrain()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

// Level returns the current progression level.
func (g *Game) Level() int {
	return g.prog.Level
}

// Landings returns the number of successful touchdowns this session.
func (g *Game) Landings() int {
	return g.landings
}

// Won reports whether the session ended by reaching the win level.
func (g *Game) Won() bool {
	return g.won
}

// Register both variants with the registry
func init() {
	registry.Register("lander", func() registry.Game {
		return New()
	})
	registry.Register("lander_zen", func() registry.Game {
		return NewZen()
	})
}
