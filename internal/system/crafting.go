// internal/system/crafting.go
package system

import (
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/defs"
)

// upgradeCost — сколько мячей уходит на один улучшенный.
const upgradeCost = 5

// CanUpgrade reports whether the player holds enough balls of type t to craft.
func CanUpgrade(p *component.Player, t component.BallType) bool {
	return p.Inventory.Count(t) >= upgradeCost
}

// UpgradeBall trades five balls of from for one of to and selects it.
// Inventory is unchanged when there are not enough balls.
func UpgradeBall(p *component.Player, from, to component.BallType) bool {
	if !CanUpgrade(p, from) {
		return false
	}
	for i := 0; i < upgradeCost; i++ {
		p.Inventory.Remove(from)
	}
	p.Inventory.Add(to, 1)
	p.SelectedBall = to
	return true
}

// UpgradeFirstAvailable applies the first recipe the player can afford.
func UpgradeFirstAvailable(p *component.Player) (defs.BallRecipe, bool) {
	for _, r := range defs.RecipeLibrary {
		if UpgradeBall(p, r.Input, r.Output) {
			return r, true
		}
	}
	return defs.BallRecipe{}, false
}

// CraftableTypes returns the ball types the player can currently upgrade,
// in recipe order.
func CraftableTypes(p *component.Player) []component.BallType {
	var out []component.BallType
	for _, r := range defs.RecipeLibrary {
		if CanUpgrade(p, r.Input) {
			out = append(out, r.Input)
		}
	}
	return out
}
