// internal/defs/upgrades.go
package defs

import (
	"fmt"
	"strings"

	"go-ball-brawler/internal/component"
)

const unlockPrefix = "unlock_"

// UpgradeDefinition is the display data of one catalog entry. The effect
// itself is bound by id in the upgrade system.
type UpgradeDefinition struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Rarity      Rarity          `yaml:"rarity"`
	Category    UpgradeCategory `yaml:"category"`
}

// UnlockTarget returns the ball type an unlock_* entry grants.
func (u UpgradeDefinition) UnlockTarget() (component.BallType, bool) {
	if !strings.HasPrefix(u.ID, unlockPrefix) {
		return component.BallNormal, false
	}
	return component.ParseBallType(strings.TrimPrefix(u.ID, unlockPrefix))
}

// UpgradeCatalog is the full list of upgrades in catalog order.
var UpgradeCatalog []UpgradeDefinition

// CategoryWeights — веса категорий при выборе улучшений (в процентах).
var CategoryWeights = []LootEntry{
	{ID: string(CategoryCombat), Weight: 40},
	{ID: string(CategoryBall), Weight: 35},
	{ID: string(CategoryUtility), Weight: 25},
}

func validateUpgrades(list []UpgradeDefinition) error {
	seen := make(map[string]bool, len(list))
	for _, u := range list {
		if u.ID == "" {
			return fmt.Errorf("upgrade without id")
		}
		if seen[u.ID] {
			return fmt.Errorf("duplicate upgrade %q", u.ID)
		}
		seen[u.ID] = true
		switch u.Category {
		case CategoryCombat, CategoryBall, CategoryUtility:
		default:
			return fmt.Errorf("upgrade %s: unknown category %q", u.ID, u.Category)
		}
		if strings.HasPrefix(u.ID, unlockPrefix) {
			if _, ok := u.UnlockTarget(); !ok {
				return fmt.Errorf("upgrade %s: unknown ball type", u.ID)
			}
		}
	}
	return nil
}
