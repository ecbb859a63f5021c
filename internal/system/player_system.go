// internal/system/player_system.go
package system

import (
	"math"

	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	vec "go-ball-brawler/pkg/utils"
)

const (
	diagonalFactor  = 0.707
	hitInvulnerable = 0.5
)

// Intent — желаемое направление движения игрока за тик.
type Intent struct {
	Up, Down, Left, Right bool
}

// CreatePlayer создаёт игрока в начальной позиции с тремя обычными мячами.
func CreatePlayer() *component.Player {
	return &component.Player{
		Position: vec.Vec(config.PlayerStartX, config.PlayerStartY),
		Stats: component.Stats{
			HP:            config.PlayerStartHP,
			MaxHP:         config.PlayerStartHP,
			Level:         1,
			XPToNextLevel: config.XPForLevel(1),
			MoveSpeed:     config.PlayerSpeed,
		},
		Inventory:        component.NewInventory(config.StartingBalls),
		SelectedBall:     component.BallNormal,
		DamageMultiplier: 1,
		SpeedMultiplier:  1,
	}
}

// UpdatePlayer moves the player, counts down invincibility and buffs, and
// recomputes the buff multipliers.
func UpdatePlayer(p *component.Player, in Intent, deltaTime float64) {
	var dx, dy float64
	if in.Left {
		dx = -1
	}
	if in.Right {
		dx = 1
	}
	if in.Up {
		dy = -1
	}
	if in.Down {
		dy = 1
	}
	if dx != 0 && dy != 0 {
		dx *= diagonalFactor
		dy *= diagonalFactor
	}

	speed := p.Stats.MoveSpeed * p.SpeedMultiplier
	p.Position.X = vec.Clamp(p.Position.X+dx*speed*deltaTime, config.PlayerWidth/2, config.ScreenWidth-config.PlayerWidth/2)
	p.Position.Y = vec.Clamp(p.Position.Y+dy*speed*deltaTime, config.HUDHeight+config.PlayerHeight/2, config.PlayerStartY)

	if p.Stats.Invincibility > 0 {
		p.Stats.Invincibility = math.Max(0, p.Stats.Invincibility-deltaTime)
	}

	kept := p.Buffs[:0]
	for _, b := range p.Buffs {
		b.Duration -= deltaTime
		if b.Duration > 0 {
			kept = append(kept, b)
		}
	}
	p.Buffs = kept
	updateMultipliers(p)
}

func updateMultipliers(p *component.Player) {
	p.DamageMultiplier = 1
	p.SpeedMultiplier = 1
	for _, b := range p.Buffs {
		if b.Multiplier == 0 {
			continue
		}
		switch b.Type {
		case component.PowerUpDamage:
			p.DamageMultiplier *= b.Multiplier
		case component.PowerUpSpeed:
			p.SpeedMultiplier *= b.Multiplier
		}
	}
}

// DamagePlayer наносит урон игроку. Во время неуязвимости урон игнорируется,
// щит поглощает удар целиком. После удара по HP игрок неуязвим 0.5 с.
func DamagePlayer(p *component.Player, damage float64) {
	if p.Stats.Invincible() {
		return
	}
	if p.Stats.HasShield() {
		p.Stats.ShieldHP = math.Max(0, p.Stats.ShieldHP-damage)
		return
	}
	p.Stats.HP = math.Max(0, p.Stats.HP-damage)
	p.Stats.Invincibility = hitInvulnerable
}

func HealPlayer(p *component.Player, amount float64) {
	p.Stats.HP = math.Min(p.Stats.HP+amount, p.Stats.MaxHP)
}

// AddBuff adds a buff or refreshes the duration of one of the same type.
func AddBuff(p *component.Player, buff component.Buff) {
	for i := range p.Buffs {
		if p.Buffs[i].Type == buff.Type {
			p.Buffs[i].Duration = buff.Duration
			return
		}
	}
	p.Buffs = append(p.Buffs, buff)
}

// AddCritChance raises the crit chance, capped at config.MaxCritChance.
func AddCritChance(p *component.Player, amount float64) {
	p.CritChance = math.Min(config.MaxCritChance, p.CritChance+amount)
}

// AddXP начисляет опыт и возвращает число полученных уровней.
// Излишек опыта переносится на следующий уровень.
func AddXP(p *component.Player, amount int) int {
	if b, ok := p.Buff(component.PowerUpXP); ok && b.Multiplier > 0 {
		amount = int(math.Floor(float64(amount) * b.Multiplier))
	}
	p.Stats.XP += amount

	levels := 0
	for p.Stats.XP >= p.Stats.XPToNextLevel {
		p.Stats.XP -= p.Stats.XPToNextLevel
		p.Stats.Level++
		p.Stats.XPToNextLevel = config.XPForLevel(p.Stats.Level)
		levels++
	}
	return levels
}

// SelectNextAvailable selects the first ball type the player has in stock,
// falling back to normal.
func SelectNextAvailable(p *component.Player) {
	for t := component.BallNormal; t < component.BallTypeCount; t++ {
		if p.Inventory.Count(t) > 0 {
			p.SelectedBall = t
			return
		}
	}
	p.SelectedBall = component.BallNormal
}
