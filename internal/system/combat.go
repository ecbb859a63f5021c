// internal/system/combat.go
package system

import (
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/defs"
)

// Параметры стихийных эффектов.
const (
	burnDuration         = 3.0
	burnDamage           = 5.0
	freezeDuration       = 2.0
	freezeSplashRadius   = 30.0
	lightningChainFactor = 0.5
	bombSplashDamage     = 25.0
	bombFlash            = 0.3
	poisonDuration       = 5.0
	poisonDamage         = 3.0
	contagionRadius      = 40.0
	contagionTargets     = 2
	contagionDuration    = 3.0
	contagionDamage      = 2.0
	critMultiplier       = 2.0
)

// CombatSystem разрешает попадания мячей: криты и стихийные эффекты.
type CombatSystem struct {
	rng  Random
	sink component.ParticleSink
}

func NewCombatSystem(rng Random, sink component.ParticleSink) *CombatSystem {
	return &CombatSystem{rng: rng, sink: sink}
}

// RollDamage adds the flat bonus and doubles the result on a critical hit.
func (s *CombatSystem) RollDamage(base, bonus, critChance float64) (float64, bool) {
	dmg := base + bonus
	if critChance > 0 && s.rng.Float64() < critChance {
		return dmg * critMultiplier, true
	}
	return dmg, false
}

// ApplyBallEffect applies the on-hit effect of ball type t to target.
// damage is the hit damage before bonus and crit. Returns the screen flash
// the effect asks for, 0 if none.
func (s *CombatSystem) ApplyBallEffect(t component.BallType, target *component.Enemy, enemies []*component.Enemy, damage float64) float64 {
	switch t {
	case component.BallFire:
		ApplyStatusEffect(target, Burn(burnDuration, burnDamage))

	case component.BallIce:
		ApplyStatusEffect(target, Freeze(freezeDuration))
		for _, e := range FindNearbyEnemies(target.Position, enemies, freezeSplashRadius, target.ID) {
			ApplyStatusEffect(e, Freeze(freezeDuration))
		}

	case component.BallLightning:
		def := defs.Ball(component.BallLightning)
		chain := FindNearbyEnemies(target.Position, enemies, def.ChainRange, target.ID)
		if len(chain) > def.ChainCount {
			chain = chain[:def.ChainCount]
		}
		for _, e := range chain {
			DamageEnemy(e, damage*lightningChainFactor)
			s.sink.Add(ImpactParticles(s.rng, e.Position, def.RGBA, 5)...)
		}

	case component.BallBomb:
		def := defs.Ball(component.BallBomb)
		Explode(target.Position, enemies, def.ExplosionRadius, bombSplashDamage)
		s.sink.Add(ExplosionParticles(s.rng, target.Position, def.RGBA, 30)...)
		return bombFlash

	case component.BallPoison:
		ApplyStatusEffect(target, Poison(poisonDuration, poisonDamage))
		spread := FindNearbyEnemies(target.Position, enemies, contagionRadius, target.ID)
		if len(spread) > contagionTargets {
			spread = spread[:contagionTargets]
		}
		for _, e := range spread {
			ApplyStatusEffect(e, Poison(contagionDuration, contagionDamage))
		}
	}
	return 0
}
