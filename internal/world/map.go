package world

import "math/rand"

// Map is a fixed-size grid of tile-variant indices. It is generated once at
// startup and never mutated afterwards.
type Map struct {
	Width  int
	Height int
	Tiles  [][]int
}

// Generate builds a width x height map over the given number of tile
// variants. Variant 0 forms the base terrain; the remaining variants are
// scattered in small clusters. The same seed always yields the same map.
func Generate(width, height, variants int, seed int64) *Map {
	rng := rand.New(rand.NewSource(seed))

	tiles := make([][]int, height)
	for y := 0; y < height; y++ {
		tiles[y] = make([]int, width)
	}

	if variants > 1 {
		clusters := width * height / 48
		for i := 0; i < clusters; i++ {
			variant := 1 + rng.Intn(variants-1)
			centerX := rng.Intn(width)
			centerY := rng.Intn(height)
			size := 4 + rng.Intn(9)

			for j := 0; j < size; j++ {
				x := centerX + rng.Intn(7) - 3
				y := centerY + rng.Intn(7) - 3
				if x >= 0 && x < width && y >= 0 && y < height {
					tiles[y][x] = variant
				}
			}
		}
	}

	return &Map{Width: width, Height: height, Tiles: tiles}
}

// Tile returns the variant index at (x, y), or -1 outside the map.
func (m *Map) Tile(x, y int) int {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return -1
	}
	return m.Tiles[y][x]
}
