// internal/system/powerup.go
package system

import (
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/defs"
	"go-ball-brawler/internal/types"
	vec "go-ball-brawler/pkg/utils"
)

// WeightedChooser is the part of the PRNG service used for loot rolls.
type WeightedChooser interface {
	Random
	ChooseWeighted(entries []defs.LootEntry) string
}

// PowerUpEffects — действия бонусов, которые затрагивают не только игрока.
type PowerUpEffects interface {
	// BombAll наносит урон всем врагам на поле.
	BombAll(damage float64)
	// FreezeAll замораживает всех живых врагов.
	FreezeAll(duration float64)
}

// RollPowerUp picks a power-up type. Elite drops have a chance at the rare pool.
func RollPowerUp(rng WeightedChooser, elite bool) component.PowerUpType {
	pool := defs.PowerUpPool
	if elite && rng.Float64() < config.PowerUpRareChance {
		pool = defs.RarePowerUpPool
	}
	t, ok := component.ParsePowerUpType(rng.ChooseWeighted(pool))
	if !ok {
		return component.PowerUpHealth
	}
	return t
}

// CreatePowerUp создаёт падающий бонус.
func CreatePowerUp(id types.EntityID, pos vec.Vector2, t component.PowerUpType) *component.PowerUp {
	return &component.PowerUp{
		ID:       id,
		Type:     t,
		Position: pos,
		Velocity: vec.Vec(0, config.PowerUpFallSpeed),
		Lifetime: config.PowerUpLifetime,
	}
}

// DropChance is the probability that a kill of enemy type t drops a power-up.
func DropChance(t component.EnemyType, bonus float64) float64 {
	if t == component.EnemyElite {
		return config.PowerUpEliteDropChance + bonus
	}
	return config.PowerUpDropChance + bonus
}

// UpdatePowerUps moves power-ups and removes expired or fallen ones.
func UpdatePowerUps(powerUps []*component.PowerUp, deltaTime float64) []*component.PowerUp {
	kept := powerUps[:0]
	for _, p := range powerUps {
		p.Position = p.Position.Add(p.Velocity.Scale(deltaTime))
		p.Lifetime -= deltaTime
		if p.Lifetime > 0 && p.Position.Y < config.ScreenHeight {
			kept = append(kept, p)
		}
	}
	return kept
}

// CollectPowerUps applies and removes every power-up within pickup range.
// onCollect is called for each collected power-up after it is applied.
func CollectPowerUps(powerUps []*component.PowerUp, player *component.Player, effects PowerUpEffects, onCollect func(component.PowerUpType)) []*component.PowerUp {
	kept := powerUps[:0]
	for _, p := range powerUps {
		if vec.Distance(p.Position, player.Position) >= config.PowerUpPickupRadius {
			kept = append(kept, p)
			continue
		}
		ApplyPowerUp(p.Type, player, effects)
		if onCollect != nil {
			onCollect(p.Type)
		}
	}
	return kept
}

// ApplyPowerUp applies the effect of a collected power-up.
func ApplyPowerUp(t component.PowerUpType, player *component.Player, effects PowerUpEffects) {
	duration := defs.PowerUpDurations[t]
	switch t {
	case component.PowerUpHealth:
		HealPlayer(player, defs.HealthPickupAmount)
	case component.PowerUpSpeed:
		AddBuff(player, component.Buff{Type: t, Duration: duration, Multiplier: defs.SpeedBuffMul})
	case component.PowerUpDamage:
		AddBuff(player, component.Buff{Type: t, Duration: duration, Multiplier: defs.DamageBuffMul})
	case component.PowerUpShield:
		player.Stats.ShieldHP = defs.ShieldPickupAmount
	case component.PowerUpXP:
		AddBuff(player, component.Buff{Type: t, Duration: duration, Multiplier: defs.XPBuffMul})
	case component.PowerUpInvincibility:
		player.Stats.Invincibility = duration
		AddBuff(player, component.Buff{Type: t, Duration: duration})
	case component.PowerUpMagnet:
		AddBuff(player, component.Buff{Type: t, Duration: duration})
	case component.PowerUpFreeze:
		AddBuff(player, component.Buff{Type: t, Duration: duration})
		if effects != nil {
			effects.FreezeAll(duration)
		}
	case component.PowerUpBomb:
		if effects != nil {
			effects.BombAll(defs.BombPickupDamage)
		}
	}
	updateMultipliers(player)
}
