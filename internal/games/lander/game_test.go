package lander

import (
	"strings"
	"testing"

	"github.com/vovakirdan/lunarcade/internal/core"
	"github.com/vovakirdan/lunarcade/internal/lander"
	"github.com/vovakirdan/lunarcade/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// scriptedInput returns the input frame for a fixed test flight script.
func scriptedInput(tick int) core.InputFrame {
	in := core.NewInputFrame()
	switch {
	case tick < 30:
		in.Set(core.ActionThrust)
	case tick < 40:
		in.Set(core.ActionRotateLeft)
	case tick < 50:
		in.Set(core.ActionThrust)
		in.Set(core.ActionRotateRight)
	}
	return in
}

func TestDeterminismBySeed(t *testing.T) {
	g1 := New()
	g2 := New()
	g1.Reset(testConfig(42))
	g2.Reset(testConfig(42))

	for tick := 0; tick < 300; tick++ {
		g1.Step(scriptedInput(tick))
		g2.Step(scriptedInput(tick))

		if tick%50 == 0 {
			s1, s2 := g1.Snapshot(), g2.Snapshot()
			if s1 != s2 {
				t.Fatalf("snapshots diverged at tick %d:\n%+v\n%+v", tick, s1, s2)
			}
		}
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Error("final snapshots differ for identical seeds and inputs")
	}
}

func TestDifferentSeedsDifferentTerrain(t *testing.T) {
	g1 := New()
	g2 := New()
	g1.Reset(testConfig(1))
	g2.Reset(testConfig(2))

	if g1.terrain.PadX == g2.terrain.PadX {
		t.Errorf("pad position identical for different seeds: %v", g1.terrain.PadX)
	}
}

func TestPadWithinSpawnMargins(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		g := New()
		g.Reset(testConfig(seed))

		min := 100.0
		max := g.worldW() - 100.0
		if g.terrain.PadX < min || g.terrain.PadX > max {
			t.Errorf("seed %d: pad at %v, want within [%v, %v]", seed, g.terrain.PadX, min, max)
		}
	}
}

// placeAbovePad positions the ship for an immediate touchdown attempt
// with the given vertical velocity.
func placeAbovePad(g *Game, vy float64) {
	scaledW := g.ship.Width * g.cfg.Physics.CollisionScale
	scaledH := g.ship.Height * g.cfg.Physics.CollisionScale
	g.ship.X = g.terrain.PadX - scaledW/2
	g.ship.Y = g.terrain.PadY - scaledH - 0.1
	g.ship.VX = 0
	g.ship.VY = vy
	g.ship.Angle = 0
}

func TestLandingAwardsScore(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	placeAbovePad(g, 0.5)

	g.Step(core.NewInputFrame())

	if g.ship.Phase != lander.PhaseLanded {
		t.Fatalf("phase = %v, want landed", g.ship.Phase)
	}
	if g.score != 100+int(g.ship.Fuel) {
		t.Errorf("score = %d, want %d", g.score, 100+int(g.ship.Fuel))
	}
	if g.landings != 1 {
		t.Errorf("landings = %d, want 1", g.landings)
	}
	if g.prog.Level != 2 {
		t.Errorf("level = %d, want 2 after landing", g.prog.Level)
	}
	if g.debounceTicks == 0 {
		t.Error("debounce window not armed after touchdown")
	}
}

func TestDebounceSwallowsConfirm(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	placeAbovePad(g, 0.5)
	g.Step(core.NewInputFrame())

	padBefore := g.terrain.PadX
	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)

	// Confirm during the debounce window must be ignored.
	for g.debounceTicks > 0 {
		g.Step(confirm)
		if g.ship.Phase != lander.PhaseLanded {
			t.Fatal("advanced to next level during the debounce window")
		}
	}
	if g.terrain.PadX != padBefore {
		t.Error("terrain regenerated during the debounce window")
	}

	// After the window, Confirm starts the next level on fresh terrain.
	g.Step(confirm)
	if g.ship.Phase != lander.PhaseFlying {
		t.Errorf("phase = %v, want flying after confirm", g.ship.Phase)
	}
	if g.ship.Fuel != 100 {
		t.Errorf("fuel = %v, want full tank on the next level", g.ship.Fuel)
	}
}

func TestCrashRetryKeepsLevel(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	placeAbovePad(g, 5.0) // Far beyond the velocity tolerance

	g.Step(core.NewInputFrame())

	if g.ship.Phase != lander.PhaseCrashed {
		t.Fatalf("phase = %v, want crashed", g.ship.Phase)
	}
	if g.prog.Lives != 2 {
		t.Errorf("lives = %d, want 2", g.prog.Lives)
	}
	if g.prog.Level != 1 {
		t.Errorf("level = %d, crash must not advance the level", g.prog.Level)
	}

	// Drain the debounce window, then retry.
	empty := core.NewInputFrame()
	for g.debounceTicks > 0 {
		g.Step(empty)
	}
	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)

	if g.ship.Phase != lander.PhaseFlying {
		t.Errorf("phase = %v, want flying after retry", g.ship.Phase)
	}
	if g.prog.Level != 1 {
		t.Errorf("level = %d, want 1 after retry", g.prog.Level)
	}
}

func TestThreeCrashesEndTheGame(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	empty := core.NewInputFrame()
	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)

	for i := 0; i < 3; i++ {
		placeAbovePad(g, 5.0)
		g.ship.Phase = lander.PhaseFlying
		g.Step(empty)
		if g.ship.Phase != lander.PhaseCrashed {
			t.Fatalf("crash %d: phase = %v, want crashed", i+1, g.ship.Phase)
		}
		if i < 2 {
			for g.debounceTicks > 0 {
				g.Step(empty)
			}
			g.Step(confirm)
		}
	}

	if !g.gameOver {
		t.Error("game not over after losing all lives")
	}
	if !g.State().GameOver {
		t.Error("State() does not report game over")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	g.score = 500
	g.gameOver = true

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.gameOver {
		t.Error("still game over after restart")
	}
	if g.score != 0 || g.prog.Level != 1 || g.prog.Lives != 3 {
		t.Errorf("restart state: score=%d level=%d lives=%d", g.score, g.prog.Level, g.prog.Lives)
	}
	if g.ship.Phase != lander.PhaseFlying {
		t.Errorf("phase = %v, want flying", g.ship.Phase)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.paused {
		t.Fatal("pause action ignored")
	}

	before := g.Snapshot()
	empty := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(empty)
	}
	after := g.Snapshot()
	if before != after {
		t.Error("state changed while paused")
	}

	g.Step(pause)
	if g.paused {
		t.Error("unpause action ignored")
	}
}

func TestZenModeDisablesRamp(t *testing.T) {
	g := NewZen()
	g.Reset(testConfig(7))

	if g.cfg.Progression.GravityStep != 0 || g.cfg.Progression.FuelStep != 0 {
		t.Errorf("zen mode must zero the ramp: %+v", g.cfg.Progression)
	}
	if g.cfg.Progression.WinLevel != 0 {
		t.Errorf("zen mode must disable the win level, got %d", g.cfg.Progression.WinLevel)
	}
	if g.ID() != "lander_zen" {
		t.Errorf("ID = %q, want lander_zen", g.ID())
	}

	gravityBefore := g.prog.Params().Gravity
	placeAbovePad(g, 0.5)
	g.Step(core.NewInputFrame())
	if g.prog.Params().Gravity != gravityBefore {
		t.Error("difficulty escalated in zen mode")
	}
}

func TestWinAtFinalLevel(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	empty := core.NewInputFrame()
	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)

	for i := 0; i < 9; i++ {
		placeAbovePad(g, 0.5)
		g.ship.Phase = lander.PhaseFlying
		g.Step(empty)
		if g.ship.Phase != lander.PhaseLanded {
			t.Fatalf("landing %d failed: phase = %v", i+1, g.ship.Phase)
		}
		if g.won {
			break
		}
		for g.debounceTicks > 0 {
			g.Step(empty)
		}
		g.Step(confirm)
	}

	if !g.won {
		t.Errorf("not won after reaching level %d", g.prog.Level)
	}
	if !g.State().GameOver {
		t.Error("State() does not end the session on a win")
	}
}

func TestRenderSmoke(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score") {
		t.Error("HUD missing from the top row")
	}

	// The bottom row must contain terrain.
	if !strings.ContainsRune(screen.Row(23), TerrainChar) {
		t.Error("no terrain on the bottom row")
	}

	// The full frame must include the ship glyph somewhere.
	if !strings.ContainsRune(screen.String(), ShipUpright) {
		t.Error("ship glyph not rendered")
	}
}

func TestRegistryRegistration(t *testing.T) {
	for _, id := range []string{"lander", "lander_zen"} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Errorf("Create(%q) failed: %v", id, err)
			continue
		}
		if g.ID() != id {
			t.Errorf("created game ID = %q, want %q", g.ID(), id)
		}
	}
}
