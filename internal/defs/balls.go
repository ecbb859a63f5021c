// internal/defs/balls.go
package defs

import (
	"fmt"
	"image/color"

	"go-ball-brawler/internal/component"
)

// BallDefinition holds the static data of one ball element.
type BallDefinition struct {
	Type            string  `yaml:"type"`
	Name            string  `yaml:"name"`
	Damage          float64 `yaml:"damage"`
	Speed           float64 `yaml:"speed"`
	Color           string  `yaml:"color"`
	ChainCount      int     `yaml:"chain_count"`
	ChainRange      float64 `yaml:"chain_range"`
	ExplosionRadius float64 `yaml:"explosion_radius"`

	Kind component.BallType `yaml:"-"`
	RGBA color.RGBA         `yaml:"-"`
}

// BallLibrary holds every ball definition keyed by type.
var BallLibrary map[component.BallType]BallDefinition

// Ball returns the definition for t, falling back to the normal ball.
func Ball(t component.BallType) BallDefinition {
	if def, ok := BallLibrary[t]; ok {
		return def
	}
	return BallLibrary[component.BallNormal]
}

func buildBallLibrary(list []BallDefinition) (map[component.BallType]BallDefinition, error) {
	lib := make(map[component.BallType]BallDefinition, len(list))
	for _, def := range list {
		kind, ok := component.ParseBallType(def.Type)
		if !ok {
			return nil, fmt.Errorf("unknown ball type %q", def.Type)
		}
		rgba, err := ParseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("ball %s: %w", def.Type, err)
		}
		if def.Speed <= 0 {
			def.Speed = 1
		}
		def.Kind = kind
		def.RGBA = rgba
		lib[kind] = def
	}
	if _, ok := lib[component.BallNormal]; !ok {
		return nil, fmt.Errorf("ball definitions must include %q", component.BallNormal)
	}
	return lib, nil
}
