package engine

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenSurface adapts an *ebiten.Image to the Surface interface. Decoded
// tile bitmaps are uploaded to the GPU once and cached across frames, so
// the per-frame cost is plain draw calls.
type EbitenSurface struct {
	dst   *ebiten.Image
	cache map[image.Image]*ebiten.Image
}

// NewEbitenSurface creates a surface with an empty texture cache. Call
// SetTarget each frame with the screen handed to Draw.
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{cache: make(map[image.Image]*ebiten.Image)}
}

// SetTarget points the surface at the current frame's render target.
func (s *EbitenSurface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

func (s *EbitenSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *EbitenSurface) Clear() {
	s.dst.Clear()
}

func (s *EbitenSurface) Compose(img image.Image, x, y, scale float64) {
	tex, ok := s.cache[img]
	if !ok {
		tex = ebiten.NewImageFromImage(img)
		s.cache[img] = tex
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	s.dst.DrawImage(tex, op)
}
