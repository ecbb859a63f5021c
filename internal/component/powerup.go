// internal/component/powerup.go
package component

import (
	"go-ball-brawler/internal/types"
	"go-ball-brawler/pkg/utils"
)

type PowerUpType int

const (
	PowerUpHealth PowerUpType = iota
	PowerUpSpeed
	PowerUpDamage
	PowerUpShield
	PowerUpXP
	PowerUpMagnet
	PowerUpFreeze
	PowerUpBomb
	PowerUpInvincibility
	PowerUpTypeCount
)

var powerUpNames = [PowerUpTypeCount]string{
	PowerUpHealth:        "health",
	PowerUpSpeed:         "speed",
	PowerUpDamage:        "damage",
	PowerUpShield:        "shield",
	PowerUpXP:            "xp",
	PowerUpMagnet:        "magnet",
	PowerUpFreeze:        "freeze",
	PowerUpBomb:          "bomb",
	PowerUpInvincibility: "invincibility",
}

func (t PowerUpType) String() string {
	if t < 0 || t >= PowerUpTypeCount {
		return "unknown"
	}
	return powerUpNames[t]
}

// ParsePowerUpType maps a power-up name to its type.
func ParsePowerUpType(name string) (PowerUpType, bool) {
	for i, n := range powerUpNames {
		if n == name {
			return PowerUpType(i), true
		}
	}
	return PowerUpHealth, false
}

// PowerUp — падающий бонус.
type PowerUp struct {
	ID       types.EntityID
	Type     PowerUpType
	Position utils.Vector2
	Velocity utils.Vector2
	Lifetime float64
}
