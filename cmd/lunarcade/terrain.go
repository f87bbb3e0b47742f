package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lunarcade/internal/config"
	"github.com/vovakirdan/lunarcade/internal/lander"
)

var terrainCmd = &cobra.Command{
	Use:   "terrain",
	Short: "Preview a generated terrain profile",
	Long: `Generate a terrain profile and print it as ASCII art.

Useful for inspecting what a given seed produces without playing.

Examples:
  lunarcade terrain
  lunarcade terrain --seed 42
  lunarcade terrain --config ./my-lander.yaml`,
	Run: runTerrain,
}

var flagTerrainConfig string

func init() {
	terrainCmd.Flags().StringVar(&flagTerrainConfig, "config", "", "Path to custom game config YAML")
}

func runTerrain(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadLander(flagTerrainConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	padX := lander.RandomPadX(cfg.World.Width, rng)
	profile := lander.GenerateTerrain(cfg.World.Width, cfg.World.Height, padX, cfg.TerrainParams(), rng)

	// Render into the terminal's cell grid
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h-3 // Leave room for the footer
	}

	scaleX := cfg.World.Width / float64(width)
	scaleY := cfg.World.Height / float64(height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			worldX := (float64(x) + 0.5) * scaleX
			h, ok := profile.HeightAt(worldX)
			if !ok {
				fmt.Print(" ")
				continue
			}
			surfaceRow := int(h / scaleY)
			switch {
			case y < surfaceRow:
				fmt.Print(" ")
			case y == surfaceRow && math.Abs(worldX-profile.PadX) <= profile.PadHalfW:
				fmt.Print("=")
			default:
				fmt.Print("#")
			}
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Printf("seed=%d  pad_x=%.1f  pad_y=%.1f  points=%d\n",
		seed, profile.PadX, profile.PadY, len(profile.Points))
}
