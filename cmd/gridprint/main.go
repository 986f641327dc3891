package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gridkit/internal/app"
	"gridkit/internal/scene"
	_ "gridkit/internal/scenes/life"
	_ "gridkit/internal/scenes/walkers"
	"gridkit/pkg/grid"
	"gridkit/pkg/gridtext"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 120, "ticks to simulate before printing")
	showMask := flag.Bool("mask", false, "also print the tile allocation mask")
	flag.Parse()

	factory, ok := scene.Scenes()[cfg.Scene]
	if !ok {
		log.Fatalf("unknown scene %q", cfg.Scene)
	}

	s := factory(cfg.SceneOptions())
	s.Reset(cfg.Seed)
	for i := 0; i < *steps; i++ {
		s.Step()
	}

	if err := gridtext.Fprint[uint8](os.Stdout, s.Grid()); err != nil {
		log.Fatal(err)
	}

	if tiled, ok := s.Grid().(*grid.Tiled[uint8]); ok {
		fmt.Printf("tiles active: %d/%d\n", tiled.Active(), tiled.Rows()*tiled.Cols())
		if *showMask {
			if err := gridtext.Fprint[bool](os.Stdout, tiled.Mask()); err != nil {
				log.Fatal(err)
			}
		}
	}
}
