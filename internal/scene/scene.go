// Package scene defines the contract demo scenes implement and a
// registry the binaries pick scenes from.
package scene

import (
	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
)

// Scene is the minimal contract a demo must implement. A scene owns a
// grid and mutates it on every Step.
type Scene interface {
	Name() string
	Bounds() geom.Bounds
	Reset(seed int64)
	Step()
	Grid() grid.Grid[uint8]
}

// Factory constructs a Scene using an optional configuration map.
type Factory func(cfg map[string]string) Scene

var scenes = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// Scenes exposes the registry of available scene factories.
func Scenes() map[string]Factory {
	return scenes
}
