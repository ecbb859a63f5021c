// internal/system/xp.go
package system

import (
	"math"

	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/types"
	vec "go-ball-brawler/pkg/utils"
)

// CreateXPOrb создаёт сферу опыта, которая полсекунды не притягивается.
func CreateXPOrb(id types.EntityID, pos vec.Vector2, value int) *component.XPOrb {
	return &component.XPOrb{
		ID:          id,
		Position:    pos,
		Value:       value,
		MagnetTimer: config.XPOrbSettleTime,
	}
}

// KillOrbValue scales an enemy's xp by the run's xp multiplier.
func KillOrbValue(xp int, multiplier float64) int {
	return int(math.Floor(float64(xp) * multiplier))
}

// MagnetRadius is the distance within which orbs home in on the player.
// The magnet buff makes it unlimited.
func MagnetRadius(player *component.Player, magnetMul float64) float64 {
	if player.HasBuff(component.PowerUpMagnet) {
		return math.Inf(1)
	}
	return config.XPCollectionRadius * magnetMul
}

// UpdateXPOrbs двигает сферы опыта и собирает те, что рядом с игроком.
// collect вызывается для каждой собранной сферы.
func UpdateXPOrbs(orbs []*component.XPOrb, playerPos vec.Vector2, magnetRadius, deltaTime float64, collect func(*component.XPOrb)) []*component.XPOrb {
	kept := orbs[:0]
	for _, orb := range orbs {
		orb.MagnetTimer -= deltaTime

		dist := vec.Distance(orb.Position, playerPos)
		if dist < config.XPOrbPickupRadius {
			collect(orb)
			continue
		}
		if orb.MagnetTimer <= 0 && dist < magnetRadius {
			angle := vec.AngleBetween(orb.Position, playerPos)
			orb.Position = orb.Position.Add(vec.FromAngle(angle, config.XPOrbMagnetSpeed*deltaTime))
		} else {
			orb.Position.Y += config.XPOrbFallSpeed * deltaTime
		}
		if orb.Position.Y < config.XPOrbDespawnY {
			kept = append(kept, orb)
		}
	}
	return kept
}
