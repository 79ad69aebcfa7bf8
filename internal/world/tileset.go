package world

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"isotiles/internal/slicer"
)

// LoadTileSet reads a sliced tile set from dir: the tileset.yaml manifest
// plus the numbered PNGs it describes. Every tile must match the manifest
// dimensions; the returned slice order matches the file numbering, so map
// cells index it directly.
func LoadTileSet(dir string) ([]image.Image, error) {
	data, err := os.ReadFile(filepath.Join(dir, slicer.ManifestName))
	if err != nil {
		return nil, fmt.Errorf("failed to read tile manifest: %w", err)
	}

	var manifest slicer.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse tile manifest: %w", err)
	}
	if manifest.Count <= 0 {
		return nil, fmt.Errorf("tile manifest in %s lists no tiles", dir)
	}

	tiles := make([]image.Image, 0, manifest.Count)
	for i := 0; i < manifest.Count; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%d.png", i))
		img, err := loadPNG(path)
		if err != nil {
			return nil, err
		}
		b := img.Bounds()
		if b.Dx() != manifest.TileWidth || b.Dy() != manifest.TileHeight {
			return nil, fmt.Errorf("tile %s is %dx%d, manifest says %dx%d",
				path, b.Dx(), b.Dy(), manifest.TileWidth, manifest.TileHeight)
		}
		tiles = append(tiles, img)
	}
	return tiles, nil
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tile: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tile %s: %w", path, err)
	}
	return img, nil
}

// PlaceholderTileSet builds n flat-color diamond tiles so the viewer can run
// before any real tile set has been sliced.
func PlaceholderTileSet(n, tileWidth, tileHeight int) []image.Image {
	palette := []color.NRGBA{
		{96, 160, 96, 255},
		{70, 130, 180, 255},
		{160, 140, 90, 255},
		{120, 120, 130, 255},
		{150, 100, 160, 255},
		{180, 160, 80, 255},
		{90, 150, 150, 255},
		{170, 110, 100, 255},
	}

	tiles := make([]image.Image, n)
	for i := 0; i < n; i++ {
		c := palette[i%len(palette)]
		tile := image.NewNRGBA(image.Rect(0, 0, tileWidth, tileHeight))
		for y := 0; y < tileHeight; y++ {
			for x := 0; x < tileWidth; x++ {
				tile.SetNRGBA(x, y, c)
			}
		}
		slicer.MaskDiamond(tile)
		tiles[i] = tile
	}
	return tiles
}
