package iso

import (
	"math/rand"
	"testing"
)

func TestCameraPanDirection(t *testing.T) {
	p := NewProjection(64, 32)
	c := Camera{X: 10, Y: 10}

	// Dragging right moves the apparent view left, so the camera's grid
	// position must decrease along the screen-x direction.
	c.Pan(p, 32, 0, 64, 64)
	if c.X >= 10 {
		t.Errorf("expected camera X to decrease after rightward drag, got %v", c.X)
	}
	if c.Y <= 10 {
		t.Errorf("expected camera Y to increase after rightward drag, got %v", c.Y)
	}
}

func TestCameraPanRoundTrip(t *testing.T) {
	p := NewProjection(64, 32)
	c := Camera{X: 32, Y: 32}

	c.Pan(p, 48, -20, 64, 64)
	c.Pan(p, -48, 20, 64, 64)
	if c.X != 32 || c.Y != 32 {
		t.Errorf("opposite pans should cancel, got (%v, %v)", c.X, c.Y)
	}
}

func TestCameraClampInvariant(t *testing.T) {
	p := NewProjection(64, 32)
	c := Camera{X: 16, Y: 16}
	rng := rand.New(rand.NewSource(7))

	const mapW, mapH = 32, 24
	for i := 0; i < 1000; i++ {
		dx := (rng.Float64() - 0.5) * 500
		dy := (rng.Float64() - 0.5) * 500
		c.Pan(p, dx, dy, mapW, mapH)

		if c.X < 0 || c.X > mapW-1 || c.Y < 0 || c.Y > mapH-1 {
			t.Fatalf("camera escaped map bounds after pan %d: (%v, %v)", i, c.X, c.Y)
		}
	}
}

func TestCameraSetPositionClamps(t *testing.T) {
	c := Camera{}
	c.SetPosition(-5, 100, 32, 24)
	if c.X != 0 || c.Y != 23 {
		t.Errorf("expected clamped position (0, 23), got (%v, %v)", c.X, c.Y)
	}
}
