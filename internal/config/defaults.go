package config

import (
	_ "embed"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the default lunar lander configuration.
// This is the hardcoded fallback mirroring defaults/lander.yaml.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		World: LanderWorld{
			Width:  800,
			Height: 600,
		},
		Physics: LanderPhysics{
			Gravity:           1.0,
			Thrust:            2.5,
			RotationSpeed:     90,
			FuelConsumption:   10,
			VelocityTolerance: 0.8,
			AngleTolerance:    15,
			CollisionScale:    0.8,
			HeightEpsilon:     1.0,
		},
		Terrain: LanderTerrain{
			Points:       40,
			PadHalfWidth: 50,
			MinHeight:    40,
			MaxHeight:    150,
			TaperDepth:   10,
		},
		Progression: LanderProgression{
			Lives:       3,
			GravityStep: 0.15,
			GravityMax:  2.0,
			FuelStep:    2.0,
			FuelMax:     20.0,
			WinLevel:    10,
			InputDelay:  0.3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "lander", "lander_zen":
		return defaultLanderYAML
	default:
		return nil
	}
}
