package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg LanderConfig
	if err := yaml.Unmarshal(defaultLanderYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if cfg != DefaultLanderConfig() {
		t.Errorf("embedded YAML = %+v, want hardcoded default %+v", cfg, DefaultLanderConfig())
	}
}

func TestLoadLanderFallsBackToEmbedded(t *testing.T) {
	// Run from a temp dir with no configs/ and no user config.
	origDir, _ := os.Getwd()
	tmpDir := t.TempDir()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("cannot chdir: %v", err)
	}
	defer os.Chdir(origDir)
	t.Setenv("HOME", tmpDir)

	cfg, err := LoadLander("")
	if err != nil {
		t.Fatalf("LoadLander failed: %v", err)
	}
	if cfg.Physics.Gravity != 1.0 || cfg.Progression.Lives != 3 {
		t.Errorf("unexpected defaults: gravity=%v lives=%d", cfg.Physics.Gravity, cfg.Progression.Lives)
	}
}

func TestLoadLanderCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")
	content := []byte("physics:\n  gravity: 1.6\nprogression:\n  lives: 7\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	cfg, err := LoadLander(path)
	if err != nil {
		t.Fatalf("LoadLander failed: %v", err)
	}
	if cfg.Physics.Gravity != 1.6 {
		t.Errorf("gravity = %v, want 1.6", cfg.Physics.Gravity)
	}
	if cfg.Progression.Lives != 7 {
		t.Errorf("lives = %d, want 7", cfg.Progression.Lives)
	}
}

func TestLoadLanderMissingCustomPath(t *testing.T) {
	if _, err := LoadLander("/nonexistent/lander.yaml"); err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestConversions(t *testing.T) {
	cfg := DefaultLanderConfig()

	p := cfg.Params()
	if p.Gravity != cfg.Physics.Gravity || p.FuelRate != cfg.Physics.FuelConsumption {
		t.Errorf("Params conversion mismatch: %+v", p)
	}
	if p.PadHalfWidth != cfg.Terrain.PadHalfWidth {
		t.Errorf("Params.PadHalfWidth = %v, want %v", p.PadHalfWidth, cfg.Terrain.PadHalfWidth)
	}

	tp := cfg.TerrainParams()
	if tp.Points != cfg.Terrain.Points || tp.TaperDepth != cfg.Terrain.TaperDepth {
		t.Errorf("TerrainParams conversion mismatch: %+v", tp)
	}

	r := cfg.Ramp()
	if r.Lives != cfg.Progression.Lives || r.WinLevel != cfg.Progression.WinLevel {
		t.Errorf("Ramp conversion mismatch: %+v", r)
	}
}

func TestApplyLanderPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		check  func(t *testing.T, cfg LanderConfig)
	}{
		{DifficultyEasy, func(t *testing.T, cfg LanderConfig) {
			if cfg.Progression.Lives != 5 || cfg.Physics.Gravity != 0.8 {
				t.Errorf("easy: lives=%d gravity=%v", cfg.Progression.Lives, cfg.Physics.Gravity)
			}
		}},
		{DifficultyNormal, func(t *testing.T, cfg LanderConfig) {
			if cfg != DefaultLanderConfig() {
				t.Error("normal preset must not modify the config")
			}
		}},
		{DifficultyHard, func(t *testing.T, cfg LanderConfig) {
			if cfg.Progression.Lives != 2 || cfg.Physics.VelocityTolerance != 0.6 {
				t.Errorf("hard: lives=%d tol=%v", cfg.Progression.Lives, cfg.Physics.VelocityTolerance)
			}
		}},
		{DifficultyFixed, func(t *testing.T, cfg LanderConfig) {
			if cfg.Progression.GravityStep != 0 || cfg.Progression.FuelStep != 0 {
				t.Errorf("fixed preset must zero the ramp: %+v", cfg.Progression)
			}
		}},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultLanderConfig()
			ApplyLanderPreset(&cfg, tc.preset)
			tc.check(t, cfg)
		})
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if GetDefaultYAML("lander") == nil {
		t.Error("no embedded default for lander")
	}
	if GetDefaultYAML("lander_zen") == nil {
		t.Error("no embedded default for lander_zen")
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("unexpected default for unknown game")
	}
}
