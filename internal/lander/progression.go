package lander

// Status is the session-level outcome tracked across attempts.
type Status int

const (
	StatusPlaying Status = iota
	StatusGameOver
	StatusWon
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Ramp describes how difficulty escalates with successful landings.
// Gravity climbs first; once it hits its cap, fuel consumption climbs too.
type Ramp struct {
	Lives       int     // Starting lives
	GravityStep float64 // Gravity increase per landing
	GravityMax  float64 // Gravity cap
	FuelStep    float64 // Fuel-rate increase per landing once gravity caps
	FuelMax     float64 // Fuel-rate cap
	WinLevel    int     // Reaching this level wins the session; 0 disables
}

// DefaultRamp returns the standard difficulty escalation.
func DefaultRamp() Ramp {
	return Ramp{
		Lives:       3,
		GravityStep: 0.15,
		GravityMax:  2.0,
		FuelStep:    2.0,
		FuelMax:     20.0,
		WinLevel:    10,
	}
}

// Progression owns the difficulty parameters and the level/lives state.
// It is the single writer of Params; the simulator only reads them.
type Progression struct {
	Level  int
	Lives  int
	Status Status

	params  Params
	initial Params
	ramp    Ramp
}

// NewProgression creates a progression controller starting from the given
// base parameters.
func NewProgression(base Params, ramp Ramp) *Progression {
	return &Progression{
		Level:   1,
		Lives:   ramp.Lives,
		Status:  StatusPlaying,
		params:  base,
		initial: base,
		ramp:    ramp,
	}
}

// Params returns the current difficulty parameters.
func (p *Progression) Params() Params {
	return p.params
}

// OnLanded acknowledges a successful landing: the level increments and
// difficulty escalates. Gravity increases by a fixed step until it reaches
// its cap; after that, fuel consumption increases instead, up to its own
// cap. Returns the new status (StatusWon once the win level is reached).
func (p *Progression) OnLanded() Status {
	if p.Status != StatusPlaying {
		return p.Status
	}

	p.Level++

	if p.params.Gravity < p.ramp.GravityMax {
		p.params.Gravity += p.ramp.GravityStep
		if p.params.Gravity > p.ramp.GravityMax {
			p.params.Gravity = p.ramp.GravityMax
		}
	} else if p.params.FuelRate < p.ramp.FuelMax {
		p.params.FuelRate += p.ramp.FuelStep
		if p.params.FuelRate > p.ramp.FuelMax {
			p.params.FuelRate = p.ramp.FuelMax
		}
	}

	if p.ramp.WinLevel > 0 && p.Level >= p.ramp.WinLevel {
		p.Status = StatusWon
	}
	return p.Status
}

// OnCrashed acknowledges a crash: one life is lost, and the session ends
// when no lives remain. Difficulty is unchanged. Returns the new status.
func (p *Progression) OnCrashed() Status {
	if p.Status != StatusPlaying {
		return p.Status
	}

	p.Lives--
	if p.Lives <= 0 {
		p.Lives = 0
		p.Status = StatusGameOver
	}
	return p.Status
}

// Reset restores lives, level, and difficulty to their initial values.
func (p *Progression) Reset() {
	p.Level = 1
	p.Lives = p.ramp.Lives
	p.Status = StatusPlaying
	p.params = p.initial
}
