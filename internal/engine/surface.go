package engine

import "image"

// Surface is the drawing target for a render pass. The engine only needs to
// clear it and composite tile bitmaps at pixel offsets; alpha handling is
// whatever the surface's native compositing provides.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (int, int)
	// Clear erases the surface before a frame is drawn.
	Clear()
	// Compose blits img with its top-left corner at (x, y), scaled by the
	// given factor.
	Compose(img image.Image, x, y, scale float64)
}
