// internal/app/snapshot.go
package app

import (
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/defs"
	"go-ball-brawler/internal/system"
	vec "go-ball-brawler/pkg/utils"
)

// aimBounces — сколько отскоков показывает линия прицела.
const aimBounces = 3

// BossView — копия босса для отрисовки.
type BossView struct {
	component.Boss
	Orbs     []component.HomingOrb
	Charging bool
}

// Snapshot — копия состояния для рендерера. Изменение снимка не влияет на игру.
type Snapshot struct {
	State    component.GameState
	GameTime float64
	Flash    float64

	Player      component.Player
	Balls       []component.Ball
	Enemies     []component.Enemy
	Projectiles []component.Projectile
	PowerUps    []component.PowerUp
	XPOrbs      []component.XPOrb
	Particles   []component.Particle
	Boss        *BossView

	Progress component.GameProgress
	Stats    component.RunStats
	Kills    int
	Wave     int

	Stars, Dust []system.Mote
	GridOffset  float64
	BossFight   bool

	// Aim — точки траектории мяча в руке, пусто если мяча нет.
	Aim []vec.Vector2

	Options        []defs.UpgradeDefinition
	HoveredOption  int
	PendingChoices int
}

// Snapshot copies everything the renderer needs.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	s := Snapshot{
		State:          w.State,
		GameTime:       w.GameTime,
		Flash:          g.flash,
		Player:         *w.Player,
		Progress:       w.Progress,
		Stats:          w.Stats,
		Kills:          g.Stats.TotalKills(),
		Wave:           g.director.WaveIndex(),
		Stars:          append([]system.Mote(nil), g.Background.Stars...),
		Dust:           append([]system.Mote(nil), g.Background.Dust...),
		GridOffset:     g.Background.GridOffset,
		BossFight:      g.Background.BossFight,
		Particles:      append([]component.Particle(nil), w.Particles.Items...),
		Options:        append([]defs.UpgradeDefinition(nil), g.states.Options()...),
		HoveredOption:  -1,
		PendingChoices: g.states.Pending(),
	}
	s.Player.Buffs = append([]component.Buff(nil), w.Player.Buffs...)

	for _, b := range w.Balls {
		s.Balls = append(s.Balls, *b)
		if b.Held {
			dir := g.pointer.Sub(b.Position)
			if !dir.IsZero() {
				s.Aim = system.PredictBallTrajectory(b.Position, dir, b.Speed, aimBounces)
			}
		}
	}
	for _, e := range w.Enemies {
		if !e.Alive() {
			continue
		}
		c := *e
		c.StatusEffects = append([]component.StatusEffect(nil), e.StatusEffects...)
		s.Enemies = append(s.Enemies, c)
	}
	for _, p := range w.Projectiles {
		s.Projectiles = append(s.Projectiles, *p)
	}
	for _, p := range w.PowerUps {
		s.PowerUps = append(s.PowerUps, *p)
	}
	for _, o := range w.XPOrbs {
		s.XPOrbs = append(s.XPOrbs, *o)
	}

	if boss := w.LiveBoss(); boss != nil {
		view := &BossView{Boss: *boss}
		view.Brawler, view.Mage = nil, nil
		if boss.Brawler != nil {
			view.Charging = boss.Brawler.Charging
		}
		if boss.Mage != nil {
			view.Orbs = append([]component.HomingOrb(nil), boss.Mage.Orbs...)
		}
		s.Boss = view
	}

	if w.State == component.StateLevelUp {
		s.HoveredOption = system.UpgradeCardAt(g.pointer, len(s.Options))
	}
	return s
}

// BossHPFraction is a convenience for HUD bars; 0 without a boss.
func (s Snapshot) BossHPFraction() float64 {
	if s.Boss == nil {
		return 0
	}
	return s.Boss.HPFraction()
}

// XPFraction is the filled part of the experience bar.
func (s Snapshot) XPFraction() float64 {
	if s.Player.Stats.XPToNextLevel <= 0 {
		return 0
	}
	return float64(s.Player.Stats.XP) / float64(s.Player.Stats.XPToNextLevel)
}

// HPFraction is the filled part of the health bar.
func (s Snapshot) HPFraction() float64 {
	if s.Player.Stats.MaxHP <= 0 {
		return 0
	}
	return vec.Clamp(s.Player.Stats.HP/s.Player.Stats.MaxHP, 0, 1)
}

// ProgressFraction is the section progress in 0..1.
func (s Snapshot) ProgressFraction() float64 {
	return s.Progress.Progress / config.ProgressMax
}
