package iso

import (
	"math"
	"testing"
)

func TestTileToScreen(t *testing.T) {
	p := NewProjection(64, 32)

	cases := []struct {
		gx, gy float64
		px, py float64
	}{
		{0, 0, 0, 0},
		{1, 0, 32, 16},
		{0, 1, -32, 16},
		{1, 1, 0, 32},
		{2.5, 0.5, 64, 48},
	}

	for _, c := range cases {
		px, py := p.TileToScreen(c.gx, c.gy)
		if px != c.px || py != c.py {
			t.Errorf("TileToScreen(%v, %v) = (%v, %v), expected (%v, %v)",
				c.gx, c.gy, px, py, c.px, c.py)
		}
	}
}

func TestScreenToTileRoundTrip(t *testing.T) {
	p := NewProjection(64, 32)

	coords := []float64{-7.25, -1, -0.5, 0, 0.5, 1, 3.75, 10, 127.125}
	for _, gx := range coords {
		for _, gy := range coords {
			px, py := p.TileToScreen(gx, gy)
			rx, ry := p.ScreenToTile(px, py)
			if math.Abs(rx-gx) > 1e-9 || math.Abs(ry-gy) > 1e-9 {
				t.Errorf("round trip (%v, %v) -> (%v, %v) -> (%v, %v)",
					gx, gy, px, py, rx, ry)
			}
		}
	}
}

func TestGridDeltaMatchesInverse(t *testing.T) {
	p := NewProjection(64, 32)

	// Moving by GridDelta(dx, dy) in grid space must shift the projected
	// position by exactly (dx, dy) in pixel space.
	deltas := [][2]float64{{10, 0}, {0, 10}, {-32, 16}, {7.5, -3.25}}
	for _, d := range deltas {
		gx, gy := p.GridDelta(d[0], d[1])
		x0, y0 := p.TileToScreen(5, 7)
		x1, y1 := p.TileToScreen(5+gx, 7+gy)
		if math.Abs(x1-x0-d[0]) > 1e-9 || math.Abs(y1-y0-d[1]) > 1e-9 {
			t.Errorf("GridDelta(%v, %v): projected shift (%v, %v)",
				d[0], d[1], x1-x0, y1-y0)
		}
	}
}

func TestHalfDimensions(t *testing.T) {
	p := NewProjection(64, 32)
	if p.HalfWidth() != 32 || p.HalfHeight() != 16 {
		t.Errorf("expected half dimensions 32x16, got %vx%v", p.HalfWidth(), p.HalfHeight())
	}
}
