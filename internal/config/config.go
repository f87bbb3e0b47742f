// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import "github.com/vovakirdan/lunarcade/internal/lander"

// LanderConfig contains all configuration for the lunar lander game.
type LanderConfig struct {
	World       LanderWorld       `yaml:"world"`
	Physics     LanderPhysics     `yaml:"physics"`
	Terrain     LanderTerrain     `yaml:"terrain"`
	Progression LanderProgression `yaml:"progression"`
}

// LanderWorld defines the virtual playfield the simulation runs in.
// The renderer scales these units to terminal cells.
type LanderWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LanderPhysics defines the initial physics parameters.
type LanderPhysics struct {
	Gravity           float64 `yaml:"gravity"`
	Thrust            float64 `yaml:"thrust"`
	RotationSpeed     float64 `yaml:"rotation_speed"`
	FuelConsumption   float64 `yaml:"fuel_consumption"`
	VelocityTolerance float64 `yaml:"velocity_tolerance"`
	AngleTolerance    float64 `yaml:"angle_tolerance"`
	CollisionScale    float64 `yaml:"collision_scale"`
	HeightEpsilon     float64 `yaml:"height_epsilon"`
}

// LanderTerrain defines terrain generation parameters.
type LanderTerrain struct {
	Points       int     `yaml:"points"`
	PadHalfWidth float64 `yaml:"pad_half_width"`
	MinHeight    float64 `yaml:"min_height"`
	MaxHeight    float64 `yaml:"max_height"`
	TaperDepth   float64 `yaml:"taper_depth"`
}

// LanderProgression defines the difficulty ramp and session rules.
type LanderProgression struct {
	Lives       int     `yaml:"lives"`
	GravityStep float64 `yaml:"gravity_step"`
	GravityMax  float64 `yaml:"gravity_max"`
	FuelStep    float64 `yaml:"fuel_step"`
	FuelMax     float64 `yaml:"fuel_max"`
	WinLevel    int     `yaml:"win_level"`
	InputDelay  float64 `yaml:"input_delay"` // Seconds of post-landing input debounce
}

// Params converts the physics section into simulation parameters.
func (c LanderConfig) Params() lander.Params {
	return lander.Params{
		Gravity:           c.Physics.Gravity,
		Thrust:            c.Physics.Thrust,
		RotationSpeed:     c.Physics.RotationSpeed,
		FuelRate:          c.Physics.FuelConsumption,
		VelocityTolerance: c.Physics.VelocityTolerance,
		AngleTolerance:    c.Physics.AngleTolerance,
		PadHalfWidth:      c.Terrain.PadHalfWidth,
		HeightEpsilon:     c.Physics.HeightEpsilon,
		CollisionScale:    c.Physics.CollisionScale,
	}
}

// TerrainParams converts the terrain section into generation parameters.
func (c LanderConfig) TerrainParams() lander.TerrainParams {
	return lander.TerrainParams{
		Points:       c.Terrain.Points,
		PadHalfWidth: c.Terrain.PadHalfWidth,
		MinHeight:    c.Terrain.MinHeight,
		MaxHeight:    c.Terrain.MaxHeight,
		TaperDepth:   c.Terrain.TaperDepth,
	}
}

// Ramp converts the progression section into the difficulty ramp.
func (c LanderConfig) Ramp() lander.Ramp {
	return lander.Ramp{
		Lives:       c.Progression.Lives,
		GravityStep: c.Progression.GravityStep,
		GravityMax:  c.Progression.GravityMax,
		FuelStep:    c.Progression.FuelStep,
		FuelMax:     c.Progression.FuelMax,
		WinLevel:    c.Progression.WinLevel,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyLanderPreset modifies the config based on a difficulty preset.
// "fixed" disables the ramp entirely; the others adjust the starting
// difficulty while keeping the ramp active.
func ApplyLanderPreset(cfg *LanderConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Progression.Lives = 5
		cfg.Physics.Gravity = 0.8
		cfg.Physics.VelocityTolerance = 1.0
	case DifficultyHard:
		cfg.Progression.Lives = 2
		cfg.Physics.Gravity = 1.2
		cfg.Physics.VelocityTolerance = 0.6
	case DifficultyFixed:
		cfg.Progression.GravityStep = 0
		cfg.Progression.FuelStep = 0
	}
}
