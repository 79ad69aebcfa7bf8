package slicer

import "image"

// diamondDistance returns the L1-normalized distance of pixel (x, y) from
// the tile center: |dx|/halfWidth + |dy|/halfHeight. Values above 1 lie
// outside the isometric rhombus silhouette.
func diamondDistance(x, y, width, height int) float64 {
	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	dx := float64(x) - cx
	dy := float64(y) - cy
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx/(float64(width)/2) + dy/(float64(height)/2)
}

// MaskDiamond zeroes every pixel outside the diamond inscribed in the tile.
// Masking is idempotent: already-transparent pixels stay zero.
func MaskDiamond(tile *image.NRGBA) {
	w := tile.Rect.Dx()
	h := tile.Rect.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if diamondDistance(x, y, w, h) > 1 {
				i := tile.PixOffset(x, y)
				tile.Pix[i] = 0
				tile.Pix[i+1] = 0
				tile.Pix[i+2] = 0
				tile.Pix[i+3] = 0
			}
		}
	}
}

// diamondCovered reports whether every pixel inside the diamond boundary
// has non-zero alpha. The same L1 norm as MaskDiamond decides membership;
// using a different norm here would let partially sampled tiles through.
func diamondCovered(tile *image.NRGBA) bool {
	w := tile.Rect.Dx()
	h := tile.Rect.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if diamondDistance(x, y, w, h) > 1 {
				continue
			}
			if tile.Pix[tile.PixOffset(x, y)+3] == 0 {
				return false
			}
		}
	}
	return true
}

// anyOpaque reports whether the tile contains at least one non-transparent pixel.
func anyOpaque(tile *image.NRGBA) bool {
	for i := 3; i < len(tile.Pix); i += 4 {
		if tile.Pix[i] != 0 {
			return true
		}
	}
	return false
}
