// internal/system/boss_brawler.go
package system

import (
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/defs"
	vec "go-ball-brawler/pkg/utils"
)

const groundPoundFlash = 0.2

// Brawler Chief attacks.
const (
	BrawlerCharge = iota
	BrawlerGroundPound
	BrawlerSwordSlash
)

func (s *BossSystem) updateBrawlerChief(boss *component.Boss, deltaTime float64) {
	data := boss.Brawler
	if data != nil && data.Charging {
		boss.Position = boss.Position.Add(data.ChargeVelocity.Scale(deltaTime))
		if boss.Position.X < defs.BrawlerChargeMargin || boss.Position.X > config.ScreenWidth-defs.BrawlerChargeMargin {
			data.Charging = false
		}
	}
	attackReady(boss, func() {
		s.BrawlerAttack(boss, s.rng.Intn(3))
	})
}

// BrawlerAttack performs one of the chief's three attacks.
func (s *BossSystem) BrawlerAttack(boss *component.Boss, attack int) {
	switch attack {
	case BrawlerCharge:
		s.charge(boss)
	case BrawlerGroundPound:
		s.groundPound(boss)
	case BrawlerSwordSlash:
		for i := 0; i < 3; i++ {
			s.schedule(component.ScheduledAction{
				BossID: boss.ID,
				Kind:   component.ActionSwordSlash,
				Delay:  float64(i) * defs.BrawlerSlashDelay,
			})
		}
	}
}

func (s *BossSystem) charge(boss *component.Boss) {
	data := boss.Brawler
	if data == nil || data.Charging {
		return
	}
	speed := defs.BrawlerChargeSpeed
	if boss.Phase >= 2 {
		speed = defs.BrawlerRageSpeed
	}
	dir := -1.0
	if s.ctx.PlayerPosition().X > boss.Position.X {
		dir = 1
	}
	data.Charging = true
	data.ChargeVelocity = vec.Vec(dir*speed, 0)
	s.schedule(component.ScheduledAction{
		BossID: boss.ID,
		Kind:   component.ActionStopCharge,
		Delay:  defs.BrawlerChargeTime,
	})
}

func (s *BossSystem) groundPound(boss *component.Boss) {
	s.ctx.Flash(groundPoundFlash)
	if vec.Distance(boss.Position, s.ctx.PlayerPosition()) < defs.BrawlerPoundRadius {
		s.ctx.DamagePlayer(defs.BrawlerPoundDamage)
	}
	count := 2
	if boss.Phase >= 2 {
		count = 4
	}
	for i := 0; i < count; i++ {
		s.ctx.SpawnEnemy(component.EnemyMelee, s.rng.Intn(config.Columns), config.HUDHeight+config.EnemySpawnOffsetY)
	}
}
