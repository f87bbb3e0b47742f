package lander

import (
	"math"
	"math/rand"
	"testing"
)

const (
	testWorldW = 800.0
	testWorldH = 600.0
)

func TestPadIsExactlyFlat(t *testing.T) {
	tp := DefaultTerrainParams()

	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		padX := RandomPadX(testWorldW, rng)
		profile := GenerateTerrain(testWorldW, testWorldH, padX, tp, rng)

		wantY := testWorldH - 50
		if profile.PadY != wantY {
			t.Fatalf("seed %d: PadY = %v, want %v", seed, profile.PadY, wantY)
		}

		for _, pt := range profile.Points {
			if math.Abs(pt.X-padX) <= tp.PadHalfWidth && pt.Y != wantY {
				t.Errorf("seed %d: pad point at x=%v has y=%v, want exactly %v",
					seed, pt.X, pt.Y, wantY)
			}
		}
	}
}

func TestPadSurfaceInterpolatesExactly(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	padX := 400.0
	profile := GenerateTerrain(testWorldW, testWorldH, padX, DefaultTerrainParams(), rng)

	// Any x within the pad half-width must interpolate to the exact pad
	// height: that is what makes the landing height check reliable.
	for dx := -50.0; dx <= 50.0; dx += 5 {
		h, ok := profile.HeightAt(padX + dx)
		if !ok {
			t.Fatalf("HeightAt(%v) not found", padX+dx)
		}
		if h != profile.PadY {
			t.Errorf("HeightAt(%v) = %v, want exactly %v", padX+dx, h, profile.PadY)
		}
	}
}

func TestStrictlyIncreasingX(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	profile := GenerateTerrain(testWorldW, testWorldH, 300, DefaultTerrainParams(), rng)

	if len(profile.Points) != 40 {
		t.Fatalf("expected 40 points, got %d", len(profile.Points))
	}

	for i := 1; i < len(profile.Points); i++ {
		if profile.Points[i].X <= profile.Points[i-1].X {
			t.Errorf("point %d x=%v not greater than previous x=%v",
				i, profile.Points[i].X, profile.Points[i-1].X)
		}
	}

	first, last := profile.Points[0], profile.Points[len(profile.Points)-1]
	if first.X != 0 {
		t.Errorf("first point x = %v, want 0", first.X)
	}
	if last.X != testWorldW {
		t.Errorf("last point x = %v, want %v", last.X, testWorldW)
	}
}

func TestEndpointsKeepRawSamples(t *testing.T) {
	tp := DefaultTerrainParams()
	padX := 400.0 // Far from both edges so the endpoints are random terrain

	seed := int64(99)
	profile := GenerateTerrain(testWorldW, testWorldH, padX, tp, rand.New(rand.NewSource(seed)))

	// Replay the generator's sampling order with an identically seeded RNG:
	// one draw per point outside the pad and taper zone, in index order.
	replay := rand.New(rand.NewSource(seed))
	n := tp.Points
	segW := testWorldW / float64(n-1)
	lo := testWorldH - tp.MaxHeight
	hi := testWorldH - tp.MinHeight

	raw := make([]float64, n)
	sampled := make([]bool, n)
	for i := 0; i < n; i++ {
		x := float64(i) * segW
		if math.Abs(x-padX) > tp.PadHalfWidth+segW {
			raw[i] = lo + replay.Float64()*(hi-lo)
			sampled[i] = true
		}
	}

	if !sampled[0] || !sampled[n-1] {
		t.Fatal("test setup: endpoints should be random terrain for this pad position")
	}
	if profile.Points[0].Y != raw[0] {
		t.Errorf("first point y = %v, want raw sample %v (must not be smoothed)",
			profile.Points[0].Y, raw[0])
	}
	if profile.Points[n-1].Y != raw[n-1] {
		t.Errorf("last point y = %v, want raw sample %v (must not be smoothed)",
			profile.Points[n-1].Y, raw[n-1])
	}
}

func TestTaperShape(t *testing.T) {
	tp := DefaultTerrainParams()
	padX := 400.0
	rng := rand.New(rand.NewSource(11))
	profile := GenerateTerrain(testWorldW, testWorldH, padX, tp, rng)

	segW := testWorldW / float64(tp.Points-1)
	found := 0
	for _, pt := range profile.Points {
		dist := math.Abs(pt.X - padX)
		if dist > tp.PadHalfWidth && dist <= tp.PadHalfWidth+segW {
			found++
			tt := (dist - tp.PadHalfWidth) / segW
			want := profile.PadY - tp.TaperDepth*tt*tt
			if pt.Y != want {
				t.Errorf("taper point at x=%v has y=%v, want %v", pt.X, pt.Y, want)
			}
		}
	}
	if found == 0 {
		t.Error("no taper points found adjacent to the pad")
	}
}

func TestTerrainHeightsWithinBand(t *testing.T) {
	tp := DefaultTerrainParams()
	rng := rand.New(rand.NewSource(21))
	profile := GenerateTerrain(testWorldW, testWorldH, 200, tp, rng)

	lo := testWorldH - tp.MaxHeight
	hi := testWorldH - tp.MinHeight
	for i, pt := range profile.Points {
		// Pad and taper points may sit below the random band's floor, but
		// smoothing never moves a point outside the sampled band.
		dist := math.Abs(pt.X - 200)
		segW := testWorldW / float64(tp.Points-1)
		if dist <= tp.PadHalfWidth+segW {
			continue
		}
		if pt.Y < lo || pt.Y > hi {
			t.Errorf("point %d y=%v outside sampling band [%v, %v]", i, pt.Y, lo, hi)
		}
	}
}

func TestHeightAtInterpolation(t *testing.T) {
	profile := &Profile{
		Points: []Point{{X: 0, Y: 100}, {X: 10, Y: 200}},
		WorldW: 10,
		WorldH: 600,
	}

	cases := []struct {
		x, want float64
	}{
		{0, 100},
		{5, 150},
		{10, 200},
		{2.5, 125},
	}
	for _, c := range cases {
		got, ok := profile.HeightAt(c.x)
		if !ok {
			t.Fatalf("HeightAt(%v) not found", c.x)
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("HeightAt(%v) = %v, want %v", c.x, got, c.want)
		}
	}

	if _, ok := profile.HeightAt(-1); ok {
		t.Error("HeightAt(-1) should be out of range")
	}
	if _, ok := profile.HeightAt(11); ok {
		t.Error("HeightAt(11) should be out of range")
	}
}

func TestHeightAtSkipsDegenerateSegments(t *testing.T) {
	// A zero-width segment must be skipped, not divided by.
	profile := &Profile{
		Points: []Point{{X: 0, Y: 100}, {X: 5, Y: 100}, {X: 5, Y: 300}, {X: 10, Y: 300}},
		WorldW: 10,
		WorldH: 600,
	}

	got, ok := profile.HeightAt(5)
	if !ok {
		t.Fatal("HeightAt(5) not found")
	}
	if got != 100 {
		t.Errorf("HeightAt(5) = %v, want 100 (first non-degenerate match)", got)
	}

	got, ok = profile.HeightAt(7.5)
	if !ok {
		t.Fatal("HeightAt(7.5) not found")
	}
	if got != 300 {
		t.Errorf("HeightAt(7.5) = %v, want 300", got)
	}
}

func TestRandomPadXRange(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		x := RandomPadX(testWorldW, rng)
		if x < 100 || x > testWorldW-100 {
			t.Fatalf("pad x=%v outside [100, %v]", x, testWorldW-100)
		}
	}
}
