package slicer

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func opaqueTile(w, h int, c color.NRGBA) *image.NRGBA {
	tile := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tile.SetNRGBA(x, y, c)
		}
	}
	return tile
}

func TestMaskDiamondShape(t *testing.T) {
	tile := opaqueTile(64, 32, color.NRGBA{200, 100, 50, 255})
	MaskDiamond(tile)

	// Corners sit outside the diamond, the center inside.
	assert.Equal(t, uint8(0), tile.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), tile.NRGBAAt(63, 0).A)
	assert.Equal(t, uint8(0), tile.NRGBAAt(0, 31).A)
	assert.Equal(t, uint8(0), tile.NRGBAAt(63, 31).A)
	assert.Equal(t, uint8(255), tile.NRGBAAt(31, 15).A)
	assert.Equal(t, uint8(255), tile.NRGBAAt(32, 16).A)
}

func TestMaskDiamondIdempotent(t *testing.T) {
	tile := opaqueTile(64, 32, color.NRGBA{10, 20, 30, 255})
	MaskDiamond(tile)

	once := make([]uint8, len(tile.Pix))
	copy(once, tile.Pix)

	MaskDiamond(tile)
	assert.Equal(t, once, tile.Pix)
}

func TestMaskDiamondZeroesAllChannels(t *testing.T) {
	tile := opaqueTile(64, 32, color.NRGBA{255, 255, 255, 255})
	MaskDiamond(tile)

	c := tile.NRGBAAt(0, 0)
	assert.Equal(t, color.NRGBA{}, c)
}

func TestDiamondCovered(t *testing.T) {
	tile := opaqueTile(64, 32, color.NRGBA{1, 2, 3, 255})
	MaskDiamond(tile)
	assert.True(t, diamondCovered(tile))

	// A single transparent pixel inside the diamond breaks coverage.
	tile.SetNRGBA(31, 15, color.NRGBA{})
	assert.False(t, diamondCovered(tile))
}

func TestAnyOpaque(t *testing.T) {
	tile := image.NewNRGBA(image.Rect(0, 0, 64, 32))
	assert.False(t, anyOpaque(tile))

	tile.SetNRGBA(10, 10, color.NRGBA{0, 0, 0, 1})
	assert.True(t, anyOpaque(tile))
}
