// internal/defs/types.go
package defs

// Rarity is a display-only tier of an upgrade.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// UpgradeCategory groups upgrades for weighted offer sampling.
type UpgradeCategory string

const (
	CategoryCombat  UpgradeCategory = "combat"
	CategoryBall    UpgradeCategory = "ball"
	CategoryUtility UpgradeCategory = "utility"
)
