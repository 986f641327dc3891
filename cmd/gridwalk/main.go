//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gridkit/internal/app"
	"gridkit/internal/scene"
	_ "gridkit/internal/scenes/life"
	_ "gridkit/internal/scenes/walkers"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := scene.Scenes()[cfg.Scene]
	if !ok {
		log.Fatalf("unknown scene %q", cfg.Scene)
	}

	s := factory(cfg.SceneOptions())
	s.Reset(cfg.Seed)

	game := app.New(s, cfg.Scale, cfg.Seed)
	ext := s.Bounds().Extents

	ebiten.SetWindowTitle("gridwalk: " + s.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(ext.X*cfg.Scale, ext.Y*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
