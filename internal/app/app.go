//go:build ebiten

package app

import (
	"image/color"
	"time"

	"gridkit/internal/render"
	"gridkit/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a scene to the ebiten.Game interface.
type Game struct {
	scene   scene.Scene
	painter *render.GridPainter
	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided scene.
func New(s scene.Scene, scale int, seed int64) *Game {
	ext := s.Bounds().Extents
	return &Game{
		scene:   s,
		painter: render.NewGridPainter(ext.X, ext.Y),
		palette: render.GrayRamp(256),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the scene state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.scene.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the scene.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if (!g.paused) || g.tickOnce {
		g.scene.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current scene state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scene.Grid(), g.palette, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	ext := g.scene.Bounds().Extents
	return ext.X * g.scale, ext.Y * g.scale
}
