// Package lander implements the lunar-lander simulation core: terrain
// generation, per-tick physics and collision, and difficulty progression.
// It is pure logic with no rendering or platform dependencies so it can be
// driven identically by the TUI shell, the SSH server, and tests.
package lander

import (
	"math"
	"math/rand"
)

// TerrainParams controls terrain profile generation.
type TerrainParams struct {
	Points       int     // Number of sample points across the world width
	PadHalfWidth float64 // Half-width of the flat landing pad
	MinHeight    float64 // Minimum terrain height above the world bottom
	MaxHeight    float64 // Maximum terrain height above the world bottom
	TaperDepth   float64 // Quadratic taper coefficient at the pad boundary
}

// DefaultTerrainParams returns the standard generation parameters.
func DefaultTerrainParams() TerrainParams {
	return TerrainParams{
		Points:       40,
		PadHalfWidth: 50,
		MinHeight:    40,
		MaxHeight:    150,
		TaperDepth:   10,
	}
}

// Point is a single terrain sample in world coordinates.
type Point struct {
	X, Y float64
}

// Profile is a piecewise-linear terrain height profile spanning the world
// width. Consecutive points define line segments with strictly increasing x.
// A profile is built once per attempt and never mutated afterwards; the
// simulator holds a read-only reference during its update.
type Profile struct {
	Points    []Point
	WorldW    float64
	WorldH    float64
	PadX      float64 // Landing pad center
	PadY      float64 // Pad surface height (WorldH - 50)
	PadHalfW  float64
}

// minSegmentWidth guards the collision search against degenerate segments.
const minSegmentWidth = 1e-6

// padSurfaceOffset is the pad height above the world bottom.
const padSurfaceOffset = 50.0

// GenerateTerrain builds a terrain profile with a flat landing pad centered
// at padX and smoothed random hills elsewhere.
//
// Points inside the pad span are exactly flat at WorldH-50 so the landing
// check can match the pad surface bit-for-bit. The transition zone one
// segment-width outside the pad tapers quadratically into the random
// terrain. Everything else is sampled uniformly and then smoothed with two
// 3-point moving-average passes; pad and taper points are excluded from
// smoothing to preserve pad flatness, and the first and last points keep
// their raw sampled heights since they have no left/right neighbor.
func GenerateTerrain(worldW, worldH, padX float64, tp TerrainParams, rng *rand.Rand) *Profile {
	n := tp.Points
	if n < 2 {
		n = 2
	}
	segW := worldW / float64(n-1)
	padY := worldH - padSurfaceOffset

	points := make([]Point, n)
	protected := make([]bool, n) // pad + taper points excluded from smoothing

	for i := 0; i < n; i++ {
		x := float64(i) * segW
		dist := math.Abs(x - padX)

		var y float64
		switch {
		case dist <= tp.PadHalfWidth:
			y = padY
			protected[i] = true
		case dist <= tp.PadHalfWidth+segW:
			// Normalized distance from the pad edge in segment widths.
			t := (dist - tp.PadHalfWidth) / segW
			y = padY - tp.TaperDepth*t*t
			protected[i] = true
		default:
			lo := worldH - tp.MaxHeight
			hi := worldH - tp.MinHeight
			y = lo + rng.Float64()*(hi-lo)
		}
		points[i] = Point{X: x, Y: y}
	}

	// Two smoothing passes, each reading from the previous pass's output
	// rather than smoothing in place, to avoid a left-to-right bias.
	for pass := 0; pass < 2; pass++ {
		prev := make([]Point, n)
		copy(prev, points)
		for i := 1; i < n-1; i++ {
			if protected[i] {
				continue
			}
			points[i].Y = (prev[i-1].Y + prev[i].Y + prev[i+1].Y) / 3
		}
	}

	return &Profile{
		Points:   points,
		WorldW:   worldW,
		WorldH:   worldH,
		PadX:     padX,
		PadY:     padY,
		PadHalfW: tp.PadHalfWidth,
	}
}

// HeightAt returns the linearly interpolated terrain height at x.
// Segments narrower than minSegmentWidth are skipped rather than treated
// as a fault. The second return is false when x lies outside the profile.
func (p *Profile) HeightAt(x float64) (float64, bool) {
	for i := 0; i < len(p.Points)-1; i++ {
		a, b := p.Points[i], p.Points[i+1]
		if b.X-a.X < minSegmentWidth {
			continue
		}
		if x >= a.X && x <= b.X {
			t := (x - a.X) / (b.X - a.X)
			return a.Y*(1-t) + b.Y*t, true
		}
	}
	return 0, false
}

// RandomPadX picks a landing pad center in [100, worldW-100], keeping a
// fixed margin from the side walls regardless of world size.
func RandomPadX(worldW float64, rng *rand.Rand) float64 {
	return 100 + rng.Float64()*(worldW-200)
}
