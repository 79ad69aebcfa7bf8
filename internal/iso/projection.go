package iso

// Projection holds the fixed tile dimensions for a 2:1 isometric projection.
// All coordinate transforms derive from the same half-width/half-height pair,
// so the forward and inverse mappings are exact algebraic inverses.
type Projection struct {
	TileWidth  int
	TileHeight int
}

// NewProjection creates a projection for the given tile dimensions.
func NewProjection(tileWidth, tileHeight int) Projection {
	return Projection{TileWidth: tileWidth, TileHeight: tileHeight}
}

// HalfWidth returns half the tile width in pixels.
func (p Projection) HalfWidth() float64 {
	return float64(p.TileWidth) / 2
}

// HalfHeight returns half the tile height in pixels.
func (p Projection) HalfHeight() float64 {
	return float64(p.TileHeight) / 2
}

// TileToScreen converts a grid coordinate to a screen pixel coordinate.
func (p Projection) TileToScreen(gx, gy float64) (float64, float64) {
	return (gx - gy) * p.HalfWidth(), (gx + gy) * p.HalfHeight()
}

// ScreenToTile converts a screen pixel coordinate back to a grid coordinate.
// It solves the 2x2 linear system behind TileToScreen, so round-tripping any
// grid coordinate returns the same value up to floating-point error.
func (p Projection) ScreenToTile(px, py float64) (float64, float64) {
	a := px / p.HalfWidth()
	b := py / p.HalfHeight()
	return (a + b) / 2, (b - a) / 2
}

// GridDelta converts a screen-space pixel delta into a grid-space delta.
func (p Projection) GridDelta(dx, dy float64) (float64, float64) {
	gx := 0.5 * (dx/p.HalfWidth() + dy/p.HalfHeight())
	gy := 0.5 * (dy/p.HalfHeight() - dx/p.HalfWidth())
	return gx, gy
}
