package iso

// Camera is a grid position marking the point projected at the view origin.
// It is owned by the rendering engine and mutated only through Pan.
type Camera struct {
	X, Y float64
}

// GetPosition returns the camera's current grid position.
func (c *Camera) GetPosition() (float64, float64) {
	return c.X, c.Y
}

// SetPosition sets the camera's grid position and clamps it to the map.
func (c *Camera) SetPosition(x, y float64, mapWidth, mapHeight int) {
	c.X = x
	c.Y = y
	c.ClampTo(mapWidth, mapHeight)
}

// Pan moves the camera by a screen-space pixel delta. The camera moves
// opposite the delta so the world appears to follow the pointer: dragging
// right shifts the visible area left.
func (c *Camera) Pan(p Projection, dx, dy float64, mapWidth, mapHeight int) {
	gx, gy := p.GridDelta(dx, dy)
	c.X -= gx
	c.Y -= gy
	c.ClampTo(mapWidth, mapHeight)
}

// ClampTo keeps the camera within [0, mapWidth-1] x [0, mapHeight-1].
func (c *Camera) ClampTo(mapWidth, mapHeight int) {
	if c.X < 0 {
		c.X = 0
	}
	if max := float64(mapWidth - 1); c.X > max {
		c.X = max
	}
	if c.Y < 0 {
		c.Y = 0
	}
	if max := float64(mapHeight - 1); c.Y > max {
		c.Y = max
	}
}
