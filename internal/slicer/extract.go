package slicer

import (
	"image"
	"image/draw"

	"isotiles/internal/threading/core"
)

// ExtractTiles partitions the plane into non-overlapping TileWidth x
// TileHeight blocks, left-to-right then top-to-bottom, masks each block to
// the diamond silhouette and keeps only fully covered, non-empty blocks.
// Partial blocks at the plane edges are never emitted.
//
// Blocks are masked and validated in parallel; indices are assigned after
// the scan so output numbering always reflects row-major discovery order.
func (s *Slicer) ExtractTiles(plane *image.NRGBA) []*image.NRGBA {
	tw := s.TileWidth
	th := s.TileHeight
	pw := plane.Rect.Dx()
	ph := plane.Rect.Dy()
	if tw <= 0 || th <= 0 || pw < tw || ph < th {
		return nil
	}

	var origins []image.Point
	for by := 0; by+th <= ph; by += th {
		for bx := 0; bx+tw <= pw; bx += tw {
			origins = append(origins, image.Point{X: bx, Y: by})
		}
	}

	results := make([]*image.NRGBA, len(origins))

	pool := core.NewWorkerPool(s.Workers)
	pool.Start()
	defer pool.Stop()

	pool.ParallelFor(0, len(origins), func(i int) {
		o := origins[i]
		tile := image.NewNRGBA(image.Rect(0, 0, tw, th))
		draw.Draw(tile, tile.Rect, plane, o, draw.Src)

		MaskDiamond(tile)
		if anyOpaque(tile) && diamondCovered(tile) {
			results[i] = tile
		}
	})

	tiles := make([]*image.NRGBA, 0, len(results))
	for _, tile := range results {
		if tile != nil {
			tiles = append(tiles, tile)
		}
	}
	return tiles
}
