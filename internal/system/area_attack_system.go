// internal/system/area_attack_system.go
package system

import (
	"go-ball-brawler/internal/component"
	vec "go-ball-brawler/pkg/utils"
)

// Explode наносит урон всем живым врагам в радиусе, включая эпицентр.
// Возвращает задетых врагов.
func Explode(origin vec.Vector2, enemies []*component.Enemy, radius, damage float64) []*component.Enemy {
	targets := FindNearbyEnemies(origin, enemies, radius, 0)
	for _, e := range targets {
		DamageEnemy(e, damage)
	}
	return targets
}

// DamageAll hits every living enemy on the field.
func DamageAll(enemies []*component.Enemy, damage float64) {
	for _, e := range enemies {
		if e.Alive() {
			DamageEnemy(e, damage)
		}
	}
}

// FreezeAll freezes every living enemy for duration seconds.
func FreezeAll(enemies []*component.Enemy, duration float64) {
	for _, e := range enemies {
		if e.Alive() {
			ApplyStatusEffect(e, Freeze(duration))
		}
	}
}
