// internal/system/upgrade.go
package system

import (
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/defs"
	vec "go-ball-brawler/pkg/utils"
)

// UpgradeTarget — состояние, которое меняют улучшения.
type UpgradeTarget struct {
	Player    *component.Player
	Modifiers *component.Modifiers
}

func addBalls(t component.BallType, n int) func(UpgradeTarget) {
	return func(u UpgradeTarget) { u.Player.Inventory.Add(t, n) }
}

// upgradeEffects binds catalog ids to their effects.
var upgradeEffects = map[string]func(UpgradeTarget){
	"max_hp": func(u UpgradeTarget) {
		u.Player.Stats.MaxHP += 10
		u.Player.Stats.HP += 10
	},
	"base_damage":   func(u UpgradeTarget) { u.Modifiers.AddBaseDamage(5) },
	"add_3_balls":   addBalls(component.BallNormal, 3),
	"ball_speed":    func(u UpgradeTarget) { u.Modifiers.ScaleBallSpeed(1.2) },
	"crit_chance":   func(u UpgradeTarget) { AddCritChance(u.Player, 0.1) },
	"life_steal":    func(u UpgradeTarget) { u.Modifiers.EnableLifeSteal() },
	"add_5_balls":   addBalls(component.BallNormal, 5),
	"add_lightning": addBalls(component.BallLightning, 1),
	"add_ghost":     addBalls(component.BallGhost, 1),
	"add_bomb":      addBalls(component.BallBomb, 1),
	"unlock_fire":   addBalls(component.BallFire, 2),
	"unlock_ice":    addBalls(component.BallIce, 2),
	"unlock_poison": addBalls(component.BallPoison, 2),
	"ball_damage":   func(u UpgradeTarget) { u.Modifiers.ScaleBallDamage(1.5) },
	"ball_size":     func(u UpgradeTarget) { u.Modifiers.ScaleBallSize(1.25) },
	"xp_magnet":     func(u UpgradeTarget) { u.Modifiers.ScaleXPMagnet(1.5) },
	"move_speed":    func(u UpgradeTarget) { u.Player.Stats.MoveSpeed *= 1.25 },
	"lucky_drops":   func(u UpgradeTarget) { u.Modifiers.AddDropRate(0.2) },
	"treasure_hunter": func(u UpgradeTarget) {
		u.Modifiers.ScaleXP(1.5)
	},
	"second_wind": func(u UpgradeTarget) { u.Modifiers.EnableSecondWind() },
}

// ApplyUpgrade applies the upgrade with the given id. Unknown ids are ignored.
func ApplyUpgrade(id string, target UpgradeTarget) bool {
	apply, ok := upgradeEffects[id]
	if !ok {
		return false
	}
	apply(target)
	return true
}

// GenerateUpgradeOptions предлагает до трёх разных улучшений. Для каждого слота
// категория выбирается по весам; если в ней ничего не осталось, берётся любое
// оставшееся улучшение. Открытие уже доступного мяча не предлагается.
func GenerateUpgradeOptions(rng WeightedChooser, inv *component.Inventory) []defs.UpgradeDefinition {
	pool := make([]defs.UpgradeDefinition, 0, len(defs.UpgradeCatalog))
	for _, u := range defs.UpgradeCatalog {
		if t, ok := u.UnlockTarget(); ok && inv.Unlocked(t) {
			continue
		}
		pool = append(pool, u)
	}

	options := make([]defs.UpgradeDefinition, 0, config.UpgradeOptionCount)
	for len(options) < config.UpgradeOptionCount && len(pool) > 0 {
		category := defs.UpgradeCategory(rng.ChooseWeighted(defs.CategoryWeights))
		var candidates []int
		for i, u := range pool {
			if u.Category == category {
				candidates = append(candidates, i)
			}
		}
		var pick int
		if len(candidates) > 0 {
			pick = candidates[rng.Intn(len(candidates))]
		} else {
			pick = rng.Intn(len(pool))
		}
		options = append(options, pool[pick])
		pool = append(pool[:pick], pool[pick+1:]...)
	}
	return options
}

// UpgradeCardRect is the screen rectangle of the i-th upgrade card.
func UpgradeCardRect(i int) vec.Rect {
	return vec.Rect{
		X: (config.ScreenWidth - config.UpgradeCardWidth) / 2,
		Y: float64(config.UpgradeCardStartY + (config.UpgradeCardHeight+config.UpgradeCardSpacing)*i),
		W: config.UpgradeCardWidth,
		H: config.UpgradeCardHeight,
	}
}

// UpgradeCardAt returns the index of the card under p, or -1.
func UpgradeCardAt(p vec.Vector2, count int) int {
	for i := 0; i < count; i++ {
		r := UpgradeCardRect(i)
		if p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H {
			return i
		}
	}
	return -1
}
