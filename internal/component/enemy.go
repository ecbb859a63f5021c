// internal/component/enemy.go
package component

import (
	"go-ball-brawler/internal/types"
	"go-ball-brawler/pkg/utils"
)

type EnemyType int

const (
	EnemyMelee EnemyType = iota
	EnemyArcher
	EnemyTank
	EnemyElite
	EnemySpawner
	EnemyTypeCount
)

var enemyTypeNames = [EnemyTypeCount]string{
	EnemyMelee:   "melee",
	EnemyArcher:  "archer",
	EnemyTank:    "tank",
	EnemyElite:   "elite",
	EnemySpawner: "spawner",
}

func (t EnemyType) String() string {
	if t < 0 || t >= EnemyTypeCount {
		return "unknown"
	}
	return enemyTypeNames[t]
}

// ParseEnemyType maps an enemy name to its type.
func ParseEnemyType(name string) (EnemyType, bool) {
	for i, n := range enemyTypeNames {
		if n == name {
			return EnemyType(i), true
		}
	}
	return EnemyMelee, false
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID            types.EntityID
	Type          EnemyType
	Position      utils.Vector2
	HP            float64
	MaxHP         float64
	Column        int
	Speed         float64
	Damage        float64
	XPValue       int
	AttackTimer   float64
	StatusEffects []StatusEffect
	Size          float64
	// Handled выставляется, когда смерть уже обработана, или враг ушёл без награды.
	Handled bool
}

func (e *Enemy) Alive() bool {
	return e.HP > 0
}

// Radius is half of the enemy's size.
func (e *Enemy) Radius() float64 {
	return e.Size / 2
}

// HasEffect reports whether a status effect of the given type is attached.
func (e *Enemy) HasEffect(t StatusType) bool {
	for _, eff := range e.StatusEffects {
		if eff.Type == t {
			return true
		}
	}
	return false
}
