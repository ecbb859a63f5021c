// internal/system/boss.go
package system

import (
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/defs"
	"go-ball-brawler/internal/entity"
	"go-ball-brawler/internal/event"
	"go-ball-brawler/internal/interfaces"
	vec "go-ball-brawler/pkg/utils"
)

// Вспышки экрана при смене фазы и гибели босса.
const (
	phaseTwoFlash   = 0.3
	phaseThreeFlash = 0.4
	bossDeathFlash  = 0.6
)

// BossSystem ведёт сценарий живого босса и его отложенные действия.
// Отложенные действия — счётчики, которые тикают вместе с игрой и перед
// срабатыванием проверяют, что их босс всё ещё жив.
type BossSystem struct {
	world   *entity.World
	ctx     interfaces.BossContext
	rng     Random
	events  *event.Dispatcher
	actions []component.ScheduledAction
}

func NewBossSystem(world *entity.World, ctx interfaces.BossContext, rng Random, events *event.Dispatcher) *BossSystem {
	return &BossSystem{world: world, ctx: ctx, rng: rng, events: events}
}

// Spawn places a fresh boss of type t at the top centre of the field.
func (s *BossSystem) Spawn(t component.BossType) *component.Boss {
	def := defs.BossLibrary[t]
	boss := &component.Boss{
		ID:            s.world.NewEntity(),
		Name:          def.Name,
		Type:          t,
		HP:            def.HP,
		MaxHP:         def.HP,
		Position:      vec.Vec(config.ScreenWidth/2, config.BossSpawnY),
		Phase:         1,
		MoveDirection: 1,
	}
	switch t {
	case component.BossBrawlerChief:
		boss.Brawler = &component.BrawlerData{}
	case component.BossDarkMage:
		boss.Mage = &component.MageData{}
	}
	s.world.Boss = boss
	s.actions = s.actions[:0]
	s.events.Emit(event.BossSpawned, event.BossData{ID: boss.ID, Type: t, Name: boss.Name, Phase: 1})
	return boss
}

// SpawnRandom spawns a boss of a uniformly chosen archetype.
func (s *BossSystem) SpawnRandom() *component.Boss {
	return s.Spawn(component.BossType(s.rng.Intn(int(component.BossTypeCount))))
}

// Pending returns the number of scheduled actions still waiting.
func (s *BossSystem) Pending() int {
	return len(s.actions)
}

// Clear drops every scheduled action.
func (s *BossSystem) Clear() {
	s.actions = s.actions[:0]
}

// Update advances the boss by one tick. It returns true on the tick the boss
// is defeated; that happens exactly once per boss.
func (s *BossSystem) Update(deltaTime float64) bool {
	s.runActions(deltaTime)

	boss := s.world.LiveBoss()
	if boss == nil {
		return false
	}
	if boss.HP <= 0 {
		boss.Defeated = true
		s.handleDefeat(boss)
		return true
	}

	boss.Elapsed += deltaTime
	boss.AttackTimer += deltaTime
	s.updatePhase(boss)

	switch boss.Type {
	case component.BossArcherKing:
		s.updateArcherKing(boss, deltaTime)
	case component.BossBrawlerChief:
		s.updateBrawlerChief(boss, deltaTime)
	case component.BossDarkMage:
		s.updateDarkMage(boss, deltaTime)
	}
	return false
}

// DamageBoss subtracts damage, clamping hp at zero.
func DamageBoss(boss *component.Boss, damage float64) {
	boss.HP -= damage
	if boss.HP < 0 {
		boss.HP = 0
	}
}

// PhaseFor returns the phase a boss of the given definition should be in at
// hpFraction. Thresholds are inclusive.
func PhaseFor(def defs.BossDefinition, hpFraction float64) int {
	phase := 1
	for i, th := range def.PhaseThresholds {
		if hpFraction <= th {
			phase = i + 2
		}
	}
	return phase
}

// updatePhase only ever moves the phase forward.
func (s *BossSystem) updatePhase(boss *component.Boss) {
	target := PhaseFor(defs.BossLibrary[boss.Type], boss.HPFraction())
	if target <= boss.Phase {
		return
	}
	boss.Phase = target
	if target >= 3 {
		s.ctx.Flash(phaseThreeFlash)
	} else {
		s.ctx.Flash(phaseTwoFlash)
	}
	s.events.Emit(event.BossPhaseChanged, event.BossData{ID: boss.ID, Type: boss.Type, Name: boss.Name, Phase: target})
}

// attackReady subtracts the interval when it has elapsed, carrying the remainder.
// fire runs before the subtraction so it sees the full timer.
func attackReady(boss *component.Boss, fire func()) {
	interval := defs.BossLibrary[boss.Type].Interval(boss.Phase)
	if boss.AttackTimer < interval {
		return
	}
	fire()
	boss.AttackTimer -= interval
}

func (s *BossSystem) handleDefeat(boss *component.Boss) {
	s.world.Particles.Add(ExplosionParticles(s.rng, boss.Position, config.BossDeathColor, 50)...)
	s.ctx.Flash(bossDeathFlash)

	for i := 0; i < defs.BossRewardOrbs; i++ {
		pos := boss.Position.Add(vec.Vec(
			s.rng.Range(-defs.BossRewardOrbSpread, defs.BossRewardOrbSpread),
			s.rng.Range(-defs.BossRewardOrbSpread, defs.BossRewardOrbSpread),
		))
		s.ctx.SpawnXPOrb(pos, defs.BossRewardOrbValue)
	}
	for i := 0; i < defs.BossRewardPowerUps; i++ {
		pos := boss.Position.Add(vec.Vec(
			s.rng.Range(-defs.BossRewardSpreadX, defs.BossRewardSpreadX),
			s.rng.Range(-defs.BossRewardSpreadY, defs.BossRewardSpreadY),
		))
		s.ctx.SpawnPowerUp(pos, true)
	}
	if boss.Mage != nil {
		boss.Mage.Orbs = nil
	}
	s.actions = s.actions[:0]
	s.world.Stats.BossesKilled++
	s.events.Emit(event.BossDefeated, event.BossData{ID: boss.ID, Type: boss.Type, Name: boss.Name, Phase: boss.Phase})
}

// schedule queues an action. An action with no delay runs right away.
func (s *BossSystem) schedule(a component.ScheduledAction) {
	if a.Delay <= 0 {
		s.run(a)
		return
	}
	s.actions = append(s.actions, a)
}

func (s *BossSystem) runActions(deltaTime float64) {
	if len(s.actions) == 0 {
		return
	}
	var due []component.ScheduledAction
	kept := s.actions[:0]
	for _, a := range s.actions {
		a.Delay -= deltaTime
		if a.Delay <= 0 {
			due = append(due, a)
			continue
		}
		kept = append(kept, a)
	}
	s.actions = kept
	for _, a := range due {
		s.run(a)
	}
}

// run fires an action if the boss that scheduled it is still alive.
func (s *BossSystem) run(a component.ScheduledAction) {
	boss := s.world.LiveBoss()
	if boss == nil || boss.ID != a.BossID || boss.HP <= 0 {
		return
	}
	switch a.Kind {
	case component.ActionStopCharge:
		if boss.Brawler != nil {
			boss.Brawler.Charging = false
		}
	case component.ActionBarrageShot:
		s.fireBarrageShot(boss, a.Angle)
	case component.ActionSwordSlash:
		s.ctx.SpawnProjectile(boss.Position, vec.Vec(0, defs.BrawlerSlashSpeed), defs.BrawlerSlashDamage, boss.ID)
	case component.ActionTeleport:
		s.teleport(boss, a.Origin)
	case component.ActionMeteor:
		s.dropMeteor(boss)
	}
}
