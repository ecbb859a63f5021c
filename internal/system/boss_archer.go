// internal/system/boss_archer.go
package system

import (
	"math"

	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/defs"
	vec "go-ball-brawler/pkg/utils"
)

// Archer King volleys, by phase and pattern index.
const (
	ArcherAimed = iota
	ArcherTriple
	ArcherCross
	ArcherAimedAgain
)

const (
	ArcherSpiral = iota
	ArcherFiveSpread
	ArcherBarrage
	ArcherCircleBurst
)

func (s *BossSystem) updateArcherKing(boss *component.Boss, deltaTime float64) {
	if boss.Phase >= 2 {
		boss.Position.X += boss.MoveDirection * defs.ArcherPatrolSpeed * deltaTime
		if boss.Position.X < defs.ArcherPatrolMargin || boss.Position.X > config.ScreenWidth-defs.ArcherPatrolMargin {
			boss.MoveDirection = -boss.MoveDirection
		}
	}
	attackReady(boss, func() {
		// индекс берётся из таймера в момент выстрела, без случайности
		pattern := int(math.Floor(boss.AttackTimer/defs.ArcherPatternPeriod)) % 4
		s.ArcherVolley(boss, pattern)
	})
}

// ArcherVolley fires pattern for the boss's current phase.
func (s *BossSystem) ArcherVolley(boss *component.Boss, pattern int) {
	aim := vec.AngleBetween(boss.Position, s.ctx.PlayerPosition())
	if boss.Phase == 1 {
		switch pattern {
		case ArcherAimed, ArcherAimedAgain:
			s.arrow(boss, aim, defs.ArcherAimedSpeed)
		case ArcherTriple:
			for i := -1; i <= 1; i++ {
				s.arrow(boss, aim+float64(i)*defs.ArcherTripleSpread, defs.ArcherAimedSpeed)
			}
		case ArcherCross:
			for i := 0; i < 4; i++ {
				s.arrow(boss, float64(i)*math.Pi/2, defs.ArcherCrossSpeed)
			}
		}
		return
	}

	switch pattern {
	case ArcherSpiral:
		offset := math.Mod(boss.Elapsed*10, 2*math.Pi)
		for i := 0; i < defs.ArcherSpiralCount; i++ {
			angle := 2*math.Pi*float64(i)/defs.ArcherSpiralCount + offset
			s.arrow(boss, angle, defs.ArcherSpiralSpeed)
		}
	case ArcherFiveSpread:
		for i := -2; i <= 2; i++ {
			s.arrow(boss, aim+float64(i)*defs.ArcherFiveSpread, defs.ArcherFiveSpeed)
		}
	case ArcherBarrage:
		for i := 0; i < defs.ArcherBarrageShots; i++ {
			s.schedule(component.ScheduledAction{
				BossID: boss.ID,
				Kind:   component.ActionBarrageShot,
				Delay:  float64(i) * defs.ArcherBarrageDelay,
				Angle:  aim,
			})
		}
	case ArcherCircleBurst:
		for i := 0; i < defs.ArcherBurstCount; i++ {
			s.arrow(boss, 2*math.Pi*float64(i)/defs.ArcherBurstCount, defs.ArcherBurstSpeed)
		}
	}
}

func (s *BossSystem) fireBarrageShot(boss *component.Boss, angle float64) {
	spread := (s.rng.Float64() - 0.5) * defs.ArcherBarrageSpread
	s.arrow(boss, angle+spread, defs.ArcherBarrageSpeed)
}

func (s *BossSystem) arrow(boss *component.Boss, angle, speed float64) {
	s.ctx.SpawnProjectile(boss.Position, vec.FromAngle(angle, speed), defs.ArcherShotDamage, boss.ID)
}
