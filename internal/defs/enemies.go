// internal/defs/enemies.go
package defs

import (
	"fmt"
	"image/color"

	"go-ball-brawler/internal/component"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Type            string  `yaml:"type"`
	HP              float64 `yaml:"hp"`
	Damage          float64 `yaml:"damage"`
	Speed           float64 `yaml:"speed"`
	XP              int     `yaml:"xp"`
	Size            float64 `yaml:"size"`
	AttackInterval  float64 `yaml:"attack_interval"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	RushSpeed       float64 `yaml:"rush_speed"`
	SlamDamage      float64 `yaml:"slam_damage"`
	SlamRadius      float64 `yaml:"slam_radius"`
	Color           string  `yaml:"color"`

	Kind component.EnemyType `yaml:"-"`
	RGBA color.RGBA          `yaml:"-"`
}

// EnemyLibrary is the library of all enemy definitions, keyed by type.
var EnemyLibrary map[component.EnemyType]EnemyDefinition

// Enemy returns the definition for t, falling back to melee.
func Enemy(t component.EnemyType) EnemyDefinition {
	if def, ok := EnemyLibrary[t]; ok {
		return def
	}
	return EnemyLibrary[component.EnemyMelee]
}

func buildEnemyLibrary(list []EnemyDefinition) (map[component.EnemyType]EnemyDefinition, error) {
	lib := make(map[component.EnemyType]EnemyDefinition, len(list))
	for _, def := range list {
		kind, ok := component.ParseEnemyType(def.Type)
		if !ok {
			return nil, fmt.Errorf("unknown enemy type %q", def.Type)
		}
		rgba, err := ParseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("enemy %s: %w", def.Type, err)
		}
		if def.HP <= 0 || def.Size <= 0 {
			return nil, fmt.Errorf("enemy %s: hp and size must be positive", def.Type)
		}
		def.Kind = kind
		def.RGBA = rgba
		lib[kind] = def
	}
	if _, ok := lib[component.EnemyMelee]; !ok {
		return nil, fmt.Errorf("enemy definitions must include %q", component.EnemyMelee)
	}
	return lib, nil
}
