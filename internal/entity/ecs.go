// internal/entity/ecs.go
package entity

import (
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/types"
)

// World владеет всеми коллекциями сущностей забега. Системы получают
// коллекции на время одного тика и возвращают отфильтрованные копии.
type World struct {
	GameTime    float64
	NextID      types.EntityID
	Player      *component.Player
	Balls       []*component.Ball
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile
	PowerUps    []*component.PowerUp
	XPOrbs      []*component.XPOrb
	Boss        *component.Boss
	Particles   component.ParticleBuffer
	Progress    component.GameProgress
	Stats       component.RunStats
	State       component.GameState
}

func NewWorld() *World {
	return &World{
		NextID: 1,
		State:  component.StatePlaying,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// FindEnemy returns the enemy with the given id, or nil.
func (w *World) FindEnemy(id types.EntityID) *component.Enemy {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// LiveBoss returns the boss if one is present and not yet defeated.
func (w *World) LiveBoss() *component.Boss {
	if w.Boss == nil || w.Boss.Defeated {
		return nil
	}
	return w.Boss
}
