// internal/system/projectile.go
package system

import (
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	vec "go-ball-brawler/pkg/utils"
)

// projectileHitRadius — хитбокс стрелы.
const projectileHitRadius = 4.0

// UpdateProjectiles двигает снаряды по прямой и убирает вылетевшие за поле.
func UpdateProjectiles(projectiles []*component.Projectile, deltaTime float64) []*component.Projectile {
	kept := projectiles[:0]
	for _, p := range projectiles {
		p.Position = p.Position.Add(p.Velocity.Scale(deltaTime))
		if p.Position.X < 0 || p.Position.X > config.ScreenWidth ||
			p.Position.Y < 0 || p.Position.Y > config.ScreenHeight {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

func ProjectileTouchesPlayer(p *component.Projectile, playerPos vec.Vector2) bool {
	return vec.Distance(p.Position, playerPos) < projectileHitRadius+config.PlayerWidth/2
}
