// internal/defs/powerups.go
package defs

import "go-ball-brawler/internal/component"

// PowerUpDurations — длительность баффов в секундах.
var PowerUpDurations = map[component.PowerUpType]float64{
	component.PowerUpSpeed:         10,
	component.PowerUpDamage:        8,
	component.PowerUpShield:        0,
	component.PowerUpXP:            15,
	component.PowerUpInvincibility: 5,
	component.PowerUpMagnet:        12,
	component.PowerUpFreeze:        6,
}

// Instant power-up amounts.
const (
	HealthPickupAmount = 30.0
	ShieldPickupAmount = 50.0
	BombPickupDamage   = 50.0
	SpeedBuffMul       = 1.5
	DamageBuffMul      = 2.0
	XPBuffMul          = 2.0
)
