package main

import (
	"fmt"
	"image/color"
	"log"

	"isotiles/internal/config"
	"isotiles/internal/engine"
	"isotiles/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	// Load the sliced tile set, falling back to flat-color placeholders so
	// the viewer runs before isoslice has produced anything.
	tiles, err := world.LoadTileSet(cfg.Tiles.Dir)
	if err != nil {
		log.Printf("Warning: failed to load tile set from %s: %v (using placeholders)", cfg.Tiles.Dir, err)
		tiles = world.PlaceholderTileSet(cfg.World.Variants, cfg.GetTileWidth(), cfg.GetTileHeight())
	}

	m := world.Generate(cfg.GetMapWidth(), cfg.GetMapHeight(), len(tiles), cfg.World.Seed)

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	v := &viewer{
		cfg:     cfg,
		eng:     engine.New(cfg, tiles, m),
		surface: engine.NewEbitenSurface(),
	}
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

type viewer struct {
	cfg     *config.Config
	eng     *engine.Engine
	surface *engine.EbitenSurface

	dragging    bool
	lastCursorX int
	lastCursorY int
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	v.updateDrag()
	v.updateWheel()
	v.updateKeys()
	return nil
}

// updateDrag pans the camera while a mouse button is held, tracking the
// cursor delta between frames.
func (v *viewer) updateDrag() {
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	cx, cy := ebiten.CursorPosition()

	if pressed && v.dragging {
		v.eng.Pan(float64(cx-v.lastCursorX), float64(cy-v.lastCursorY))
	}
	v.dragging = pressed
	v.lastCursorX, v.lastCursorY = cx, cy
}

// updateWheel pans on plain wheel/trackpad input and zooms while Ctrl or
// Alt is held.
func (v *viewer) updateWheel() {
	wheelX, wheelY := ebiten.Wheel()
	if wheelX == 0 && wheelY == 0 {
		return
	}
	if zoomModifierActive() {
		v.eng.ZoomBy(1 + wheelY*v.cfg.Input.ZoomRate)
		return
	}
	scale := v.cfg.Input.WheelPanScale
	v.eng.Pan(wheelX*scale, wheelY*scale)
}

func (v *viewer) updateKeys() {
	speed := v.cfg.Input.KeyPanSpeed
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		v.eng.Pan(speed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		v.eng.Pan(-speed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		v.eng.Pan(0, speed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		v.eng.Pan(0, -speed)
	}
}

func zoomModifierActive() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControlLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyControlRight) ||
		ebiten.IsKeyPressed(ebiten.KeyAltLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyAltRight)
}

func (v *viewer) Draw(screen *ebiten.Image) {
	v.surface.SetTarget(screen)
	v.eng.Render(v.surface)
	v.drawHUD(screen)
}

func (v *viewer) drawHUD(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()

	camX, camY := v.eng.Camera()
	mx, my := ebiten.CursorPosition()
	tx, ty := v.eng.TileAt(float64(mx), float64(my), w, h)
	variant := v.eng.WorldMap().Tile(tx, ty)

	lines := []string{
		fmt.Sprintf("camera (%.1f, %.1f)  zoom %.2f", camX, camY, v.eng.Zoom()),
		fmt.Sprintf("cursor tile (%d, %d) variant %d", tx, ty, variant),
		"drag/wheel: pan  ctrl+wheel: zoom  esc: quit",
	}
	for i, line := range lines {
		ebitext.Draw(screen, line, basicfont.Face7x13, 8, 16+i*14, color.White)
	}
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return v.cfg.GetScreenWidth(), v.cfg.GetScreenHeight()
}
