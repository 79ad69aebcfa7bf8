// Package slicer converts a rectangular source image into diamond-shaped
// isometric tile bitmaps. The source is projected onto an isometric plane
// (each source pixel treated as one grid unit), the plane is cut into
// tile-sized blocks, and only blocks whose diamond region is fully covered
// by opaque source content survive.
package slicer

import (
	"errors"
	"image"
	"image/draw"
	"io"
	"log"
	"math"

	"isotiles/internal/threading/core"
)

// ErrNoTiles is returned when no block passes the validity filter. It almost
// always means the source image is too small or sparse for the requested
// tile dimensions.
var ErrNoTiles = errors.New("slicer: no tiles produced")

// planePad is the padding in pixels added around the projected bounding box.
const planePad = 2

// Slicer cuts a source image into tileWidth x tileHeight diamond tiles.
type Slicer struct {
	TileWidth  int
	TileHeight int

	// Workers sets the worker pool size; zero means one worker per CPU.
	Workers int

	// Log receives progress output. Nil discards it.
	Log *log.Logger
}

// New creates a slicer for the given tile dimensions.
func New(tileWidth, tileHeight int) *Slicer {
	return &Slicer{
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Log:        log.New(io.Discard, "", 0),
	}
}

// PlaneBounds returns the origin and dimensions of the isometric plane
// covering a sw x sh source. The four source corners are forward-projected
// (x scale 1, y scale 1/2), bounded, and padded on each side.
func PlaneBounds(sw, sh int) (originX, originY float64, width, height int) {
	corners := [4][2]float64{
		{0, 0},
		{float64(sw), 0},
		{0, float64(sh)},
		{float64(sw), float64(sh)},
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		px := c[0] - c[1]
		py := (c[0] + c[1]) / 2
		minX = math.Min(minX, px)
		maxX = math.Max(maxX, px)
		minY = math.Min(minY, py)
		maxY = math.Max(maxY, py)
	}

	originX = minX - planePad
	originY = minY - planePad
	width = int(math.Ceil(maxX-minX)) + 2*planePad
	height = int(math.Ceil(maxY-minY)) + 2*planePad
	return originX, originY, width, height
}

// ProjectPlane renders the full isometric plane for the source image. Every
// plane pixel is mapped back to source space through the inverse transform
// and sampled bilinearly; pixels that land outside the source stay fully
// transparent.
func (s *Slicer) ProjectPlane(src image.Image) *image.NRGBA {
	nsrc := toNRGBA(src)
	sw := nsrc.Rect.Dx()
	sh := nsrc.Rect.Dy()

	originX, originY, pw, ph := PlaneBounds(sw, sh)
	plane := image.NewNRGBA(image.Rect(0, 0, pw, ph))

	s.logf("projecting %dx%d source onto %dx%d plane", sw, sh, pw, ph)

	pool := core.NewWorkerPool(s.Workers)
	pool.Start()
	defer pool.Stop()

	maxX := float64(sw - 1)
	maxY := float64(sh - 1)
	pool.ParallelFor(0, ph, func(py int) {
		wy := float64(py) + originY
		for px := 0; px < pw; px++ {
			wx := float64(px) + originX

			// Inverse of the forward projection used by PlaneBounds.
			sx := wx/2 + wy
			sy := wy - wx/2
			if sx < 0 || sx > maxX || sy < 0 || sy > maxY {
				continue
			}
			plane.SetNRGBA(px, py, bilinear(nsrc, sx, sy))
		}
	})

	return plane
}

// Slice projects the source onto the isometric plane and extracts every
// valid diamond tile in row-major discovery order.
func (s *Slicer) Slice(src image.Image) ([]*image.NRGBA, error) {
	plane := s.ProjectPlane(src)
	tiles := s.ExtractTiles(plane)
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}
	s.logf("extracted %d valid tiles", len(tiles))
	return tiles, nil
}

func (s *Slicer) logf(format string, args ...any) {
	if s.Log != nil {
		s.Log.Printf(format, args...)
	}
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Rect, src, b.Min, draw.Src)
	return n
}
