package lander

import "math"

// Phase is the lifecycle flag of a lander attempt.
type Phase int

const (
	PhaseFlying Phase = iota
	PhaseLanded
	PhaseCrashed
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseFlying:
		return "flying"
	case PhaseLanded:
		return "landed"
	case PhaseCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Controls are the player intents for one tick.
type Controls struct {
	Thrust      bool
	RotateLeft  bool
	RotateRight bool
}

// Params are the difficulty-bearing simulation parameters. They are owned
// by the Progression controller and passed in by reference each tick, so
// the simulator carries no hidden shared state and tests can inject
// arbitrary values.
type Params struct {
	Gravity           float64 // Added to vertical velocity per second of sim time
	Thrust            float64 // Engine acceleration along the lander's axis, scaled by dt
	RotationSpeed     float64 // Degrees per second
	FuelRate          float64 // Fuel units per second at full burn
	VelocityTolerance float64 // Max |vx|, |vy| for a safe landing
	AngleTolerance    float64 // Max |angle| from upright for a safe landing
	PadHalfWidth      float64 // Horizontal tolerance from the pad center
	HeightEpsilon     float64 // Pad-surface height match tolerance
	CollisionScale    float64 // Collision box scale relative to the sprite
}

// DefaultParams returns the initial difficulty parameters.
func DefaultParams() Params {
	return Params{
		Gravity:           1.0,
		Thrust:            2.5,
		RotationSpeed:     90,
		FuelRate:          10,
		VelocityTolerance: 0.8,
		AngleTolerance:    15,
		PadHalfWidth:      50,
		HeightEpsilon:     1.0,
		CollisionScale:    0.8,
	}
}

// Events are the side-effect signals of one tick, consumed by the platform
// for sound triggering and effects.
type Events struct {
	Landed    bool // Touched down safely this tick
	Crashed   bool // Hit terrain outside the landing envelope this tick
	Thrusting bool // Engine or rotation burned fuel this tick
}

// Lander holds the full state of one descent attempt. Position is the
// top-left of the bounding box in world coordinates, y growing downward.
// Once the phase leaves PhaseFlying the state is frozen until Reset.
type Lander struct {
	X, Y   float64
	VX, VY float64
	Angle  float64 // Degrees, 0 pointing straight up, wraps mod 360
	Fuel   float64 // 0..100

	Width  float64
	Height float64

	Phase       Phase
	Elapsed     float64 // Simulated seconds since reset
	LandingTime float64 // Elapsed at the moment of touchdown
	CrashX      float64
	CrashY      float64
}

// Lander geometry in world units.
const (
	LanderWidth  = 20.0
	LanderHeight = 30.0
	spawnY       = 50.0
	initialFuel  = 100.0
)

// NewLander creates a lander positioned for the start of an attempt.
func NewLander(worldW float64) *Lander {
	l := &Lander{}
	l.Reset(worldW)
	return l
}

// Reset restores the lander to the top-center spawn with full fuel.
func (l *Lander) Reset(worldW float64) {
	l.X = worldW / 2
	l.Y = spawnY
	l.VX = 0
	l.VY = 0
	l.Angle = 0
	l.Fuel = initialFuel
	l.Width = LanderWidth
	l.Height = LanderHeight
	l.Phase = PhaseFlying
	l.Elapsed = 0
	l.LandingTime = 0
	l.CrashX = 0
	l.CrashY = 0
}

// Update advances the simulation by one tick of dt seconds against the
// given terrain and difficulty parameters.
//
// Velocity-affecting quantities (gravity, thrust, rotation, fuel burn) are
// scaled by dt; position integration adds the per-tick velocity directly,
// so velocities are in world units per tick. A dt of zero is a no-op, as is
// any call after the attempt has ended.
func (l *Lander) Update(dt float64, in Controls, terrain *Profile, p Params) Events {
	var ev Events
	if l.Phase != PhaseFlying || dt == 0 {
		return ev
	}
	l.Elapsed += dt

	l.VY += p.Gravity * dt

	rotating := (in.RotateLeft || in.RotateRight) && l.Fuel > 0
	if rotating {
		if in.RotateLeft {
			l.Angle = math.Mod(l.Angle+p.RotationSpeed*dt, 360)
		}
		if in.RotateRight {
			l.Angle = math.Mod(l.Angle-p.RotationSpeed*dt, 360)
		}
		// Rotation burns fuel at half the main engine rate.
		l.Fuel = math.Max(0, l.Fuel-p.FuelRate*0.5*dt)
	}

	if in.Thrust && l.Fuel > 0 {
		rad := l.Angle * math.Pi / 180
		l.VX += math.Sin(rad) * p.Thrust * dt
		l.VY -= math.Cos(rad) * p.Thrust * dt
		l.Fuel = math.Max(0, l.Fuel-p.FuelRate*dt)
		ev.Thrusting = true
	}
	ev.Thrusting = ev.Thrusting || rotating

	l.X += l.VX
	l.Y += l.VY

	// Keep the lander inside the world: hard walls at the sides, and the
	// ceiling kills vertical velocity so the lander cannot stick to it.
	l.X = math.Max(0, math.Min(terrain.WorldW-l.Width, l.X))
	if l.Y < 0 {
		l.Y = 0
		l.VY = 0
	}

	l.checkTerrainContact(terrain, p, &ev)
	return ev
}

// checkTerrainContact tests the scaled collision box against the terrain
// profile and classifies the contact as a landing or a crash.
func (l *Lander) checkTerrainContact(terrain *Profile, p Params, ev *Events) {
	scaledW := l.Width * p.CollisionScale
	scaledH := l.Height * p.CollisionScale

	// The collision box is anchored at the sprite's top-left and shrunk by
	// the collision scale, making contact slightly more forgiving than the
	// visible sprite.
	centerX := l.X + scaledW/2
	centerY := l.Y + scaledH/2
	bottom := l.Y + scaledH

	height, ok := terrain.HeightAt(centerX)
	if !ok || bottom < height {
		return
	}

	safe := math.Abs(centerX-terrain.PadX) <= p.PadHalfWidth &&
		math.Abs(height-terrain.PadY) < p.HeightEpsilon &&
		math.Abs(l.VX) < p.VelocityTolerance &&
		math.Abs(l.VY) < p.VelocityTolerance &&
		math.Abs(NormalizeAngle(l.Angle)) < p.AngleTolerance

	if safe {
		l.Phase = PhaseLanded
		l.LandingTime = l.Elapsed
		ev.Landed = true
	} else {
		l.Phase = PhaseCrashed
		l.CrashX = centerX
		l.CrashY = centerY
		ev.Crashed = true
	}

	// Snap the collision box onto the surface, accounting for the offset
	// between the visual box and the shrunk collision box.
	l.Y = height - scaledH - (l.Height-scaledH)/2
}

// NormalizeAngle maps an angle in degrees to (-180, 180].
func NormalizeAngle(a float64) float64 {
	na := math.Mod(a+180, 360)
	if na <= 0 {
		na += 360
	}
	return na - 180
}
