package engine

import (
	"image"
	"math"

	"isotiles/internal/config"
	"isotiles/internal/iso"
	"isotiles/internal/world"
)

// windowMargin is the grid-unit padding added around the viewport corner
// bounding box. Tiles anchored up to a full grid unit left or right of
// their projected point, plus the vertical skew, stay within two units.
const windowMargin = 2

// Engine renders an isometric world map onto a Surface. It owns the camera
// and view-origin state; input handling and the frame loop stay with the
// host application.
type Engine struct {
	proj     iso.Projection
	tiles    []image.Image
	worldMap *world.Map
	camera   iso.Camera

	viewOriginX   float64
	viewOriginY   float64
	hasViewOrigin bool

	zoom    float64
	zoomMin float64
	zoomMax float64
}

// New creates an engine for the given tile set and map. The camera starts
// at the map center.
func New(cfg *config.Config, tiles []image.Image, m *world.Map) *Engine {
	e := &Engine{
		proj:     iso.NewProjection(cfg.GetTileWidth(), cfg.GetTileHeight()),
		tiles:    tiles,
		worldMap: m,
		zoom:     cfg.GetZoomInitial(),
	}
	e.zoomMin, e.zoomMax = cfg.GetZoomRange()
	e.camera.SetPosition(float64(m.Width-1)/2, float64(m.Height-1)/2, m.Width, m.Height)
	return e
}

// Pan moves the camera by a screen-space pixel delta, scaled by the current
// zoom so a drag tracks the pointer at any zoom level.
func (e *Engine) Pan(dx, dy float64) {
	e.camera.Pan(e.proj, dx/e.zoom, dy/e.zoom, e.worldMap.Width, e.worldMap.Height)
}

// ZoomBy multiplies the zoom factor, clamped to the configured range.
func (e *Engine) ZoomBy(factor float64) {
	e.zoom = math.Min(math.Max(e.zoom*factor, e.zoomMin), e.zoomMax)
}

// Zoom returns the current zoom factor.
func (e *Engine) Zoom() float64 {
	return e.zoom
}

// Camera returns the camera's current grid position.
func (e *Engine) Camera() (float64, float64) {
	return e.camera.GetPosition()
}

// SetViewOrigin pins the screen pixel where the camera projects. Without an
// explicit origin the surface center is used.
func (e *Engine) SetViewOrigin(x, y float64) {
	e.viewOriginX = x
	e.viewOriginY = y
	e.hasViewOrigin = true
}

// Projection returns the engine's projection constants.
func (e *Engine) Projection() iso.Projection {
	return e.proj
}

// TileSet returns the tile bitmaps, for host introspection.
func (e *Engine) TileSet() []image.Image {
	return e.tiles
}

// WorldMap returns the world map, for host introspection.
func (e *Engine) WorldMap() *world.Map {
	return e.worldMap
}

func (e *Engine) viewOrigin(w, h int) (float64, float64) {
	if e.hasViewOrigin {
		return e.viewOriginX, e.viewOriginY
	}
	return float64(w) / 2, float64(h) / 2
}

// screenToGrid maps a surface pixel to a continuous grid coordinate.
func (e *Engine) screenToGrid(sx, sy float64, w, h int) (float64, float64) {
	ox, oy := e.viewOrigin(w, h)
	camX, camY := e.proj.TileToScreen(e.camera.X, e.camera.Y)
	return e.proj.ScreenToTile((sx-ox)/e.zoom+camX, (sy-oy)/e.zoom+camY)
}

// TileAt returns the map cell under a surface pixel. Cell (x, y) covers the
// grid square [x, x+1) x [y, y+1); its diamond center projects from the
// square's midpoint.
func (e *Engine) TileAt(sx, sy float64, w, h int) (int, int) {
	gx, gy := e.screenToGrid(sx, sy, w, h)
	return int(math.Floor(gx)), int(math.Floor(gy))
}

// VisibleWindow computes the grid window that covers everything visible on
// a w x h surface: the four viewport corners are inverted to grid space,
// bounded, expanded by the margin and clamped to the map. The window is a
// superset of every cell whose footprint intersects the viewport.
func (e *Engine) VisibleWindow(w, h int) (minX, minY, maxX, maxY int) {
	corners := [4][2]float64{
		{0, 0},
		{float64(w), 0},
		{0, float64(h)},
		{float64(w), float64(h)},
	}

	lowX, lowY := math.Inf(1), math.Inf(1)
	highX, highY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		gx, gy := e.screenToGrid(c[0], c[1], w, h)
		lowX = math.Min(lowX, gx)
		highX = math.Max(highX, gx)
		lowY = math.Min(lowY, gy)
		highY = math.Max(highY, gy)
	}

	minX = clamp(int(math.Floor(lowX))-windowMargin, 0, e.worldMap.Width-1)
	maxX = clamp(int(math.Ceil(highX))+windowMargin, 0, e.worldMap.Width-1)
	minY = clamp(int(math.Floor(lowY))-windowMargin, 0, e.worldMap.Height-1)
	maxY = clamp(int(math.Ceil(highY))+windowMargin, 0, e.worldMap.Height-1)
	return minX, minY, maxX, maxY
}

// Render draws one frame. Cells are visited in row-major order so rows
// further back are drawn before rows in front; higher x+y sums project
// lower on screen and must overdraw. Out-of-range variant indices and
// off-surface tiles are silently skipped.
func (e *Engine) Render(dst Surface) {
	dst.Clear()

	w, h := dst.Size()
	ox, oy := e.viewOrigin(w, h)
	camX, camY := e.proj.TileToScreen(e.camera.X, e.camera.Y)

	minX, minY, maxX, maxY := e.VisibleWindow(w, h)

	halfW := e.proj.HalfWidth()
	tileW := float64(e.proj.TileWidth) * e.zoom
	tileH := float64(e.proj.TileHeight) * e.zoom

	for gy := minY; gy <= maxY; gy++ {
		for gx := minX; gx <= maxX; gx++ {
			idx := e.worldMap.Tile(gx, gy)
			if idx < 0 || idx >= len(e.tiles) {
				continue
			}

			px, py := e.proj.TileToScreen(float64(gx), float64(gy))
			// The projected grid point is the diamond's top center.
			sx := (px-halfW-camX)*e.zoom + ox
			sy := (py-camY)*e.zoom + oy

			if sx+tileW < 0 || sy+tileH < 0 || sx >= float64(w) || sy >= float64(h) {
				continue
			}
			dst.Compose(e.tiles[idx], sx, sy, e.zoom)
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
