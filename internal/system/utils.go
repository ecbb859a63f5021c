// internal/system/utils.go
package system

import (
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/types"
	vec "go-ball-brawler/pkg/utils"
)

// DamageEnemy наносит урон врагу. HP не опускается ниже нуля.
func DamageEnemy(e *component.Enemy, damage float64) {
	e.HP -= damage
	if e.HP < 0 {
		e.HP = 0
	}
}

// FindNearbyEnemies returns living enemies within radius of origin (distance <= radius),
// skipping excludeID, in the order they appear in enemies.
func FindNearbyEnemies(origin vec.Vector2, enemies []*component.Enemy, radius float64, excludeID types.EntityID) []*component.Enemy {
	var out []*component.Enemy
	for _, e := range enemies {
		if e.ID == excludeID || !e.Alive() {
			continue
		}
		if vec.Distance(origin, e.Position) <= radius {
			out = append(out, e)
		}
	}
	return out
}

func EnemiesInColumn(enemies []*component.Enemy, column int) []*component.Enemy {
	var out []*component.Enemy
	for _, e := range enemies {
		if e.Column == column {
			out = append(out, e)
		}
	}
	return out
}

// ColumnX — центр колонки по X.
func ColumnX(column int) float64 {
	return float64(column)*config.ColumnWidth + config.ColumnWidth/2.0
}

// ColumnAt returns the column under x, clamped to the playfield.
func ColumnAt(x float64) int {
	c := int(x / config.ColumnWidth)
	if c < 0 {
		return 0
	}
	if c >= config.Columns {
		return config.Columns - 1
	}
	return c
}
