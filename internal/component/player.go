// internal/component/player.go
package component

import "go-ball-brawler/pkg/utils"

// Stats — числовое состояние игрока.
type Stats struct {
	HP            float64
	MaxHP         float64
	Level         int
	XP            int
	XPToNextLevel int
	MoveSpeed     float64
	ShieldHP      float64
	// Invincibility — оставшееся время неуязвимости, 0 если её нет.
	Invincibility float64
}

func (s Stats) Invincible() bool {
	return s.Invincibility > 0
}

func (s Stats) HasShield() bool {
	return s.ShieldHP > 0
}

// Buff — временный эффект бонуса. Не больше одного на тип.
type Buff struct {
	Type       PowerUpType
	Duration   float64
	Multiplier float64 // 0 when the buff is a plain flag
}

// Player — единственный персонаж игрока на сессию.
type Player struct {
	Position         utils.Vector2
	Stats            Stats
	Inventory        Inventory
	SelectedBall     BallType
	Buffs            []Buff
	DamageMultiplier float64
	SpeedMultiplier  float64
	CritChance       float64
}

// Buff returns the active buff of type t.
func (p *Player) Buff(t PowerUpType) (Buff, bool) {
	for _, b := range p.Buffs {
		if b.Type == t {
			return b, true
		}
	}
	return Buff{}, false
}

func (p *Player) HasBuff(t PowerUpType) bool {
	_, ok := p.Buff(t)
	return ok
}
