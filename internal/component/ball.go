// internal/component/ball.go
package component

import (
	"go-ball-brawler/internal/types"
	"go-ball-brawler/pkg/utils"
)

// BallType — стихия мяча. Порядок совпадает с порядком автовыбора.
type BallType int

const (
	BallNormal BallType = iota
	BallFire
	BallIce
	BallLightning
	BallBomb
	BallPoison
	BallGhost
	BallTypeCount
)

var ballTypeNames = [BallTypeCount]string{
	BallNormal:    "normal",
	BallFire:      "fire",
	BallIce:       "ice",
	BallLightning: "lightning",
	BallBomb:      "bomb",
	BallPoison:    "poison",
	BallGhost:     "ghost",
}

func (t BallType) String() string {
	if t < 0 || t >= BallTypeCount {
		return "unknown"
	}
	return ballTypeNames[t]
}

// ParseBallType maps a ball name to its type.
func ParseBallType(name string) (BallType, bool) {
	for i, n := range ballTypeNames {
		if n == name {
			return BallType(i), true
		}
	}
	return BallNormal, false
}

// Phases reports whether the ball passes through enemies instead of bouncing.
func (t BallType) Phases() bool {
	return t == BallGhost || t == BallLightning
}

// Ball — мяч на поле или в руке игрока.
type Ball struct {
	ID       types.EntityID
	Type     BallType
	Position utils.Vector2
	Velocity utils.Vector2
	Damage   float64
	Speed    float64
	Radius   float64
	Active   bool
	Held     bool
	// Returned помечает обычный мяч, пойманный у нижней границы.
	Returned bool
}

// Inventory — запас мячей по типам. Счётчики никогда не уходят в минус.
type Inventory struct {
	counts   [BallTypeCount]int
	unlocked [BallTypeCount]bool
}

// NewInventory returns an inventory holding n normal balls.
func NewInventory(normal int) Inventory {
	var inv Inventory
	inv.unlocked[BallNormal] = true
	inv.Add(BallNormal, normal)
	return inv
}

func (inv *Inventory) Count(t BallType) int {
	if t < 0 || t >= BallTypeCount {
		return 0
	}
	return inv.counts[t]
}

// Add grants n balls of type t. Non-positive n is ignored.
func (inv *Inventory) Add(t BallType, n int) {
	if t < 0 || t >= BallTypeCount || n <= 0 {
		return
	}
	inv.counts[t] += n
	inv.unlocked[t] = true
}

// Remove takes one ball of type t, reporting false when there is none.
func (inv *Inventory) Remove(t BallType) bool {
	if inv.Count(t) <= 0 {
		return false
	}
	inv.counts[t]--
	return true
}

// Unlocked reports whether the player has ever owned a ball of type t.
func (inv *Inventory) Unlocked(t BallType) bool {
	if t < 0 || t >= BallTypeCount {
		return false
	}
	return inv.unlocked[t]
}

func (inv *Inventory) Total() int {
	total := 0
	for _, c := range inv.counts {
		total += c
	}
	return total
}
