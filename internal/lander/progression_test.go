package lander

import (
	"math"
	"testing"
)

func newTestProgression() *Progression {
	return NewProgression(DefaultParams(), DefaultRamp())
}

func TestGravityRampReachesCapExactly(t *testing.T) {
	p := NewProgression(DefaultParams(), Ramp{
		Lives:       3,
		GravityStep: 0.15,
		GravityMax:  2.0,
		FuelStep:    2.0,
		FuelMax:     20.0,
	})

	// ceil((2.0 - 1.0) / 0.15) = 7 landings to reach the cap.
	landings := int(math.Ceil((2.0 - 1.0) / 0.15))
	for i := 0; i < landings; i++ {
		if p.Params().Gravity >= 2.0 {
			t.Fatalf("gravity capped after only %d landings", i)
		}
		p.OnLanded()
	}

	if got := p.Params().Gravity; got != 2.0 {
		t.Errorf("gravity after %d landings = %v, want exactly 2.0 (clamped)", landings, got)
	}
}

func TestFuelRampEngagesAfterGravityCap(t *testing.T) {
	p := newTestProgression()
	baseFuel := p.Params().FuelRate

	// Land until gravity caps; fuel rate must not move before that.
	for p.Params().Gravity < p.ramp.GravityMax {
		p.OnLanded()
		if p.Params().Gravity < p.ramp.GravityMax && p.Params().FuelRate != baseFuel {
			t.Fatalf("fuel rate escalated to %v before gravity capped", p.Params().FuelRate)
		}
	}

	p.OnLanded()
	want := baseFuel + p.ramp.FuelStep
	if got := p.Params().FuelRate; got != want {
		t.Errorf("fuel rate after gravity cap = %v, want %v", got, want)
	}

	// Fuel rate is clamped to its own cap.
	for i := 0; i < 100; i++ {
		p.OnLanded()
	}
	if got := p.Params().FuelRate; got != p.ramp.FuelMax {
		t.Errorf("fuel rate = %v, want capped at %v", got, p.ramp.FuelMax)
	}
}

func TestCrashCostsLifeAndEndsGame(t *testing.T) {
	p := newTestProgression()
	gravityBefore := p.Params().Gravity

	if st := p.OnCrashed(); st != StatusPlaying {
		t.Fatalf("status after first crash = %v, want playing", st)
	}
	if p.Lives != 2 {
		t.Errorf("lives = %d, want 2", p.Lives)
	}
	if p.Params().Gravity != gravityBefore {
		t.Errorf("crash must not change difficulty, gravity = %v", p.Params().Gravity)
	}

	p.OnCrashed()
	if st := p.OnCrashed(); st != StatusGameOver {
		t.Errorf("status after third crash = %v, want game over", st)
	}
	if p.Lives != 0 {
		t.Errorf("lives = %d, want 0", p.Lives)
	}
}

func TestWinLevel(t *testing.T) {
	ramp := DefaultRamp()
	ramp.WinLevel = 10
	p := NewProgression(DefaultParams(), ramp)

	for i := 0; i < 8; i++ {
		if st := p.OnLanded(); st != StatusPlaying {
			t.Fatalf("won after only %d landings at level %d", i+1, p.Level)
		}
	}
	if st := p.OnLanded(); st != StatusWon {
		t.Errorf("status at level %d = %v, want won", p.Level, st)
	}
}

func TestWinLevelDisabled(t *testing.T) {
	ramp := DefaultRamp()
	ramp.WinLevel = 0
	p := NewProgression(DefaultParams(), ramp)

	for i := 0; i < 50; i++ {
		if st := p.OnLanded(); st != StatusPlaying {
			t.Fatalf("session ended with win level disabled: %v", st)
		}
	}
}

func TestTerminalStatusSticky(t *testing.T) {
	p := newTestProgression()
	p.OnCrashed()
	p.OnCrashed()
	p.OnCrashed()

	levelBefore := p.Level
	if st := p.OnLanded(); st != StatusGameOver {
		t.Errorf("OnLanded after game over = %v, want game over unchanged", st)
	}
	if p.Level != levelBefore {
		t.Errorf("level advanced after game over: %d", p.Level)
	}
}

func TestProgressionReset(t *testing.T) {
	p := newTestProgression()
	for i := 0; i < 5; i++ {
		p.OnLanded()
	}
	p.OnCrashed()

	p.Reset()

	if p.Level != 1 || p.Lives != 3 || p.Status != StatusPlaying {
		t.Errorf("after reset: level=%d lives=%d status=%v", p.Level, p.Lives, p.Status)
	}
	if p.Params() != DefaultParams() {
		t.Errorf("params after reset = %+v, want initial values", p.Params())
	}
}
