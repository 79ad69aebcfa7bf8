package slicer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/ericpauley/go-quantize/quantize"
	"gopkg.in/yaml.v3"
)

// ManifestName is the file written next to the emitted tiles describing the
// tile set; the viewer reads it back to size the tile-variant index range.
const ManifestName = "tileset.yaml"

// Manifest describes an emitted tile set.
type Manifest struct {
	TileWidth  int `yaml:"tile_width"`
	TileHeight int `yaml:"tile_height"`
	Count      int `yaml:"count"`
}

// WriteTiles writes tiles as sequentially numbered PNGs (0.png, 1.png, ...)
// plus a tileset.yaml manifest into dir, creating it if needed. A positive
// colors value quantizes each tile to at most that many palette entries.
func WriteTiles(dir string, tiles []*image.NRGBA, colors int) error {
	if len(tiles) == 0 {
		return ErrNoTiles
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for i, tile := range tiles {
		var out image.Image = tile
		if colors > 0 {
			out = quantizeTile(tile, colors)
		}
		if err := writePNG(filepath.Join(dir, fmt.Sprintf("%d.png", i)), out); err != nil {
			return err
		}
	}

	first := tiles[0].Rect
	manifest := Manifest{
		TileWidth:  first.Dx(),
		TileHeight: first.Dy(),
		Count:      len(tiles),
	}
	data, err := yaml.Marshal(&manifest)
	if err != nil {
		return fmt.Errorf("failed to encode tile manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestName), data, 0o644); err != nil {
		return fmt.Errorf("failed to write tile manifest: %w", err)
	}
	return nil
}

// quantizeTile reduces the tile to a palette of at most colors entries,
// reserving one entry for the transparent region outside the diamond.
func quantizeTile(tile *image.NRGBA, colors int) *image.Paletted {
	q := quantize.MedianCutQuantizer{AddTransparent: true}
	p := q.Quantize(make(color.Palette, 0, colors), tile)
	pm := image.NewPaletted(tile.Rect, p)
	draw.Draw(pm, tile.Rect, tile, tile.Rect.Min, draw.Src)
	return pm
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
