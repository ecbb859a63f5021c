// internal/system/movement.go
package system

import (
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/defs"
	"go-ball-brawler/internal/types"
	vec "go-ball-brawler/pkg/utils"
)

// ProjectileSpawner выпускает снаряд от имени врага или босса.
type ProjectileSpawner func(pos, vel vec.Vector2, damage float64, owner types.EntityID)

// CreateEnemy creates an enemy of type t at the centre of column.
func CreateEnemy(id types.EntityID, t component.EnemyType, column int, y float64) *component.Enemy {
	def := defs.Enemy(t)
	return &component.Enemy{
		ID:       id,
		Type:     def.Kind,
		Position: vec.Vec(ColumnX(column), y),
		HP:       def.HP,
		MaxHP:    def.HP,
		Column:   column,
		Speed:    def.Speed,
		Damage:   def.Damage,
		XPValue:  def.XP,
		Size:     def.Size,
	}
}

// UpdateEnemies отбрасывает обработанных мёртвых и ушедших за нижний край
// врагов, тикает эффекты и выполняет поведение по типу. Мёртвый враг без
// Handled остаётся в списке до обхода смертей.
func UpdateEnemies(enemies []*component.Enemy, playerPos vec.Vector2, deltaTime float64, spawn ProjectileSpawner) []*component.Enemy {
	kept := enemies[:0]
	for _, e := range enemies {
		if !e.Alive() {
			if !e.Handled {
				kept = append(kept, e)
			}
			continue
		}
		if e.Position.Y > config.ScreenHeight+e.Size {
			continue
		}
		tickStatusEffects(e, deltaTime)

		switch e.Type {
		case component.EnemyMelee:
			updateMelee(e, playerPos, deltaTime)
		case component.EnemyArcher, component.EnemyElite:
			updateShooter(e, playerPos, deltaTime, spawn)
		case component.EnemyTank, component.EnemySpawner:
			e.Position.Y += EffectiveSpeed(e) * deltaTime
			e.AttackTimer += deltaTime
		}
		kept = append(kept, e)
	}
	return kept
}

func updateMelee(e *component.Enemy, playerPos vec.Vector2, deltaTime float64) {
	e.Position.Y += EffectiveSpeed(e) * deltaTime

	// рывок к игроку только у самой его линии
	if e.Position.Y >= config.PlayerStartY-config.MeleeRushDistance {
		dir := vec.Sign(playerPos.X - e.Position.X)
		e.Position.X += dir * defs.Enemy(component.EnemyMelee).RushSpeed * deltaTime * config.MeleeRushFactor
	}
}

// updateShooter moves archers and elites down and fires aimed arrows.
// The timer resets to zero on fire, dropping any overshoot.
func updateShooter(e *component.Enemy, playerPos vec.Vector2, deltaTime float64, spawn ProjectileSpawner) {
	e.Position.Y += EffectiveSpeed(e) * deltaTime

	def := defs.Enemy(e.Type)
	e.AttackTimer += deltaTime
	if e.AttackTimer < def.AttackInterval {
		return
	}
	e.AttackTimer = 0
	angle := vec.AngleBetween(e.Position, playerPos)
	if spawn != nil {
		spawn(e.Position, vec.FromAngle(angle, def.ProjectileSpeed), e.Damage, e.ID)
	}
}

// ShouldSpawnerSpawn reports whether a spawner's timer has run out, resetting it.
func ShouldSpawnerSpawn(e *component.Enemy) bool {
	if e.Type != component.EnemySpawner || !e.Alive() {
		return false
	}
	if e.AttackTimer >= defs.Enemy(component.EnemySpawner).AttackInterval {
		e.AttackTimer = 0
		return true
	}
	return false
}

// ShouldTankSlam reports whether a tank is ready to slam, resetting its timer.
func ShouldTankSlam(e *component.Enemy) bool {
	if e.Type != component.EnemyTank || !e.Alive() {
		return false
	}
	if e.AttackTimer >= defs.Enemy(component.EnemyTank).AttackInterval {
		e.AttackTimer = 0
		return true
	}
	return false
}

// EnemyTouchesPlayer — круг врага против круга игрока.
func EnemyTouchesPlayer(e *component.Enemy, playerPos vec.Vector2) bool {
	return vec.Distance(e.Position, playerPos) < e.Radius()+config.PlayerWidth/2
}
