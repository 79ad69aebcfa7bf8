package world

import "testing"

func TestGenerateDimensions(t *testing.T) {
	m := Generate(40, 25, 4, 3)

	if m.Width != 40 || m.Height != 25 {
		t.Fatalf("expected 40x25 map, got %dx%d", m.Width, m.Height)
	}
	if len(m.Tiles) != 25 || len(m.Tiles[0]) != 40 {
		t.Fatalf("tile grid does not match declared dimensions")
	}
}

func TestGenerateVariantsInRange(t *testing.T) {
	const variants = 5
	m := Generate(64, 64, variants, 11)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			v := m.Tiles[y][x]
			if v < 0 || v >= variants {
				t.Fatalf("cell (%d, %d) has variant %d outside [0, %d)", x, y, v, variants)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(32, 32, 6, 42)
	b := Generate(32, 32, 6, 42)

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if a.Tiles[y][x] != b.Tiles[y][x] {
				t.Fatalf("same seed produced different maps at (%d, %d)", x, y)
			}
		}
	}
}

func TestGenerateSingleVariant(t *testing.T) {
	m := Generate(16, 16, 1, 1)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if m.Tiles[y][x] != 0 {
				t.Fatalf("single-variant map should be all zeros, got %d at (%d, %d)",
					m.Tiles[y][x], x, y)
			}
		}
	}
}

func TestTileOutOfBounds(t *testing.T) {
	m := Generate(8, 8, 2, 1)

	cases := [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {100, 100}}
	for _, c := range cases {
		if got := m.Tile(c[0], c[1]); got != -1 {
			t.Errorf("Tile(%d, %d) = %d, expected -1 outside the map", c[0], c[1], got)
		}
	}

	if got := m.Tile(3, 3); got == -1 {
		t.Error("Tile(3, 3) reported out of bounds inside the map")
	}
}
