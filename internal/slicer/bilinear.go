package slicer

import (
	"image"
	"image/color"
	"math"
)

// bilinear samples the source at a fractional coordinate using a 4-neighbor
// weighted average. Neighbor lookups are clamped to the image bounds so
// samples on the last row or column never read out of range.
func bilinear(src *image.NRGBA, sx, sy float64) color.NRGBA {
	w := src.Rect.Dx()
	h := src.Rect.Dy()

	x0 := int(math.Floor(sx))
	y0 := int(math.Floor(sy))
	fx := sx - float64(x0)
	fy := sy - float64(y0)

	x0 = clampInt(x0, 0, w-1)
	y0 = clampInt(y0, 0, h-1)
	x1 := clampInt(x0+1, 0, w-1)
	y1 := clampInt(y0+1, 0, h-1)

	c00 := src.NRGBAAt(x0, y0)
	c10 := src.NRGBAAt(x1, y0)
	c01 := src.NRGBAAt(x0, y1)
	c11 := src.NRGBAAt(x1, y1)

	w00 := (1 - fx) * (1 - fy)
	w10 := fx * (1 - fy)
	w01 := (1 - fx) * fy
	w11 := fx * fy

	return color.NRGBA{
		R: mix(c00.R, c10.R, c01.R, c11.R, w00, w10, w01, w11),
		G: mix(c00.G, c10.G, c01.G, c11.G, w00, w10, w01, w11),
		B: mix(c00.B, c10.B, c01.B, c11.B, w00, w10, w01, w11),
		A: mix(c00.A, c10.A, c01.A, c11.A, w00, w10, w01, w11),
	}
}

func mix(v00, v10, v01, v11 uint8, w00, w10, w01, w11 float64) uint8 {
	v := float64(v00)*w00 + float64(v10)*w10 + float64(v01)*w01 + float64(v11)*w11
	return uint8(math.Round(math.Min(math.Max(v, 0), 255)))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
