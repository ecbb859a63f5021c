// internal/component/boss.go
package component

import (
	"go-ball-brawler/internal/types"
	"go-ball-brawler/pkg/utils"
)

type BossType int

const (
	BossArcherKing BossType = iota
	BossBrawlerChief
	BossDarkMage
	BossTypeCount
)

func (t BossType) String() string {
	switch t {
	case BossArcherKing:
		return "archer_king"
	case BossBrawlerChief:
		return "brawler_chief"
	case BossDarkMage:
		return "dark_mage"
	}
	return "unknown"
}

// Boss — босс секции. Одновременно жив не более одного.
type Boss struct {
	ID            types.EntityID
	Name          string
	Type          BossType
	HP            float64
	MaxHP         float64
	Position      utils.Vector2
	Phase         int
	AttackTimer   float64
	MoveDirection float64
	// Elapsed — время жизни босса, задаёт смещение спирали.
	Elapsed  float64
	Defeated bool

	// Только одно из полей ниже заполнено, в зависимости от Type.
	Brawler *BrawlerData
	Mage    *MageData
}

// HPFraction returns hp/maxHp.
func (b *Boss) HPFraction() float64 {
	if b.MaxHP <= 0 {
		return 0
	}
	return b.HP / b.MaxHP
}

// Bounds is the boss hit box centred on its position.
func (b *Boss) Bounds(w, h float64) utils.Rect {
	return utils.Rect{X: b.Position.X - w/2, Y: b.Position.Y - h/2, W: w, H: h}
}

// BrawlerData — состояние рывка Вождя.
type BrawlerData struct {
	Charging       bool
	ChargeVelocity utils.Vector2
}

// MageData — самонаводящиеся сферы и телепорт Тёмного мага.
type MageData struct {
	Orbs        []HomingOrb
	Teleporting bool
}

// HomingOrb преследует игрока и взрывается при касании.
type HomingOrb struct {
	ID       types.EntityID
	Position utils.Vector2
	HP       float64
}

// ActionKind — тип отложенного действия босса.
type ActionKind int

const (
	ActionStopCharge ActionKind = iota
	ActionBarrageShot
	ActionSwordSlash
	ActionTeleport
	ActionMeteor
)

// ScheduledAction — отложенный эффект, привязанный к конкретному боссу.
type ScheduledAction struct {
	BossID types.EntityID
	Kind   ActionKind
	Delay  float64 // seconds until it fires
	Angle  float64
	Origin utils.Vector2
}
