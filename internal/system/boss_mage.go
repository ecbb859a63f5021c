// internal/system/boss_mage.go
package system

import (
	"math"

	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/defs"
	vec "go-ball-brawler/pkg/utils"
)

// Dark Mage attacks.
const (
	MageMissiles = iota
	MageTeleport
	MageMeteor
)

func (s *BossSystem) updateDarkMage(boss *component.Boss, deltaTime float64) {
	if boss.Mage != nil {
		boss.Mage.Orbs = s.steerOrbs(boss.Mage.Orbs, deltaTime)
	}
	attackReady(boss, func() {
		s.MageAttack(boss, s.rng.Intn(3))
	})
}

// steerOrbs moves orbs toward the player; an orb that reaches the player
// hurts it and disappears.
func (s *BossSystem) steerOrbs(orbs []component.HomingOrb, deltaTime float64) []component.HomingOrb {
	player := s.ctx.PlayerPosition()
	kept := orbs[:0]
	for _, orb := range orbs {
		delta := player.Sub(orb.Position)
		dist := delta.Len()
		if dist > defs.MageOrbStopRadius {
			orb.Position = orb.Position.Add(delta.Scale(defs.MageOrbSpeed * deltaTime / dist))
		}
		if dist < defs.MageOrbHitRadius {
			s.ctx.DamagePlayer(defs.MageOrbDamage)
			continue
		}
		if orb.HP > 0 {
			kept = append(kept, orb)
		}
	}
	return kept
}

// MageAttack performs one of the mage's attacks. Meteors need phase 3 and
// fall back to missiles before that.
func (s *BossSystem) MageAttack(boss *component.Boss, attack int) {
	switch attack {
	case MageTeleport:
		if boss.Mage == nil || boss.Mage.Teleporting {
			return
		}
		boss.Mage.Teleporting = true
		s.schedule(component.ScheduledAction{
			BossID: boss.ID,
			Kind:   component.ActionTeleport,
			Delay:  defs.MageTeleportDelay,
			Origin: boss.Position,
		})
	case MageMeteor:
		if boss.Phase < 3 {
			s.summonOrbs(boss)
			return
		}
		for i := 0; i < defs.MageMeteorCount; i++ {
			s.schedule(component.ScheduledAction{
				BossID: boss.ID,
				Kind:   component.ActionMeteor,
				Delay:  float64(i) * defs.MageMeteorDelay,
			})
		}
	default:
		s.summonOrbs(boss)
	}
}

func (s *BossSystem) summonOrbs(boss *component.Boss) {
	if boss.Mage == nil {
		return
	}
	for i := 0; i < defs.MageOrbCount; i++ {
		angle := 2 * math.Pi * float64(i) / defs.MageOrbCount
		boss.Mage.Orbs = append(boss.Mage.Orbs, component.HomingOrb{
			ID:       s.world.NewEntity(),
			Position: boss.Position.Add(vec.FromAngle(angle, defs.MageOrbSpawnOffset)),
			HP:       defs.MageOrbHP,
		})
	}
}

// teleport moves the mage and leaves archers where it stood.
func (s *BossSystem) teleport(boss *component.Boss, origin vec.Vector2) {
	boss.Position = vec.Vec(
		s.rng.Range(defs.MageTeleportMarginX, config.ScreenWidth-defs.MageTeleportMarginX),
		s.rng.Range(config.HUDHeight+100, config.HUDHeight+200),
	)
	column := ColumnAt(origin.X)
	for i := 0; i < defs.MageSummonCount; i++ {
		s.ctx.SpawnEnemy(component.EnemyArcher, column, origin.Y)
	}
	if boss.Mage != nil {
		boss.Mage.Teleporting = false
	}
}

func (s *BossSystem) dropMeteor(boss *component.Boss) {
	column := s.rng.Intn(config.Columns)
	pos := vec.Vec(ColumnX(column), config.HUDHeight+config.EnemySpawnOffsetY)
	s.ctx.SpawnProjectile(pos, vec.Vec(0, defs.MageMeteorSpeed), defs.MageMeteorDamage, boss.ID)
}
