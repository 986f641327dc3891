package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the demo binaries.
type Config struct {
	Scene  string
	Width  int
	Height int
	Tile   int
	Count  int
	Scale  int
	TPS    int
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scene: "walkers", Width: 160, Height: 120, Tile: 20, Count: 8, Scale: 4, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene to run")
	fs.IntVar(&c.Width, "width", c.Width, "field width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "field height in cells")
	fs.IntVar(&c.Tile, "tile", c.Tile, "tile side for sparse scenes")
	fs.IntVar(&c.Count, "count", c.Count, "agent count for sparse scenes")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for scene reset")
}

// SceneOptions converts the config into a scene factory option map.
func (c *Config) SceneOptions() map[string]string {
	return map[string]string{
		"width":  strconv.Itoa(c.Width),
		"height": strconv.Itoa(c.Height),
		"tile":   strconv.Itoa(c.Tile),
		"count":  strconv.Itoa(c.Count),
	}
}
