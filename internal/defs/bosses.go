// internal/defs/bosses.go
package defs

import (
	"image/color"

	"go-ball-brawler/internal/component"
)

// BossDefinition holds the static data of one boss archetype.
type BossDefinition struct {
	Type  component.BossType
	Name  string
	HP    float64
	Color color.RGBA

	// AttackIntervals[i] is the attack period in phase i+1.
	AttackIntervals []float64
	// PhaseThresholds[i] is the hp fraction at or below which phase i+2 starts.
	PhaseThresholds []float64
}

// Interval returns the attack period for the given phase.
func (d BossDefinition) Interval(phase int) float64 {
	if len(d.AttackIntervals) == 0 {
		return 1
	}
	i := phase - 1
	if i < 0 {
		i = 0
	}
	if i >= len(d.AttackIntervals) {
		i = len(d.AttackIntervals) - 1
	}
	return d.AttackIntervals[i]
}

// MaxPhase is the last phase the boss can reach.
func (d BossDefinition) MaxPhase() int {
	return len(d.PhaseThresholds) + 1
}

var BossLibrary = map[component.BossType]BossDefinition{
	component.BossArcherKing: {
		Type:            component.BossArcherKing,
		Name:            "The Archer King",
		HP:              500,
		Color:           color.RGBA{74, 255, 74, 255},
		AttackIntervals: []float64{4, 2.5},
		PhaseThresholds: []float64{0.5},
	},
	component.BossBrawlerChief: {
		Type:            component.BossBrawlerChief,
		Name:            "The Brawler Chief",
		HP:              800,
		Color:           color.RGBA{255, 74, 74, 255},
		AttackIntervals: []float64{3.5},
		PhaseThresholds: []float64{0.6, 0.3},
	},
	component.BossDarkMage: {
		Type:            component.BossDarkMage,
		Name:            "The Dark Mage",
		HP:              1200,
		Color:           color.RGBA{201, 74, 255, 255},
		AttackIntervals: []float64{3},
		PhaseThresholds: []float64{0.6, 0.3},
	},
}

// Boss pattern tuning.
const (
	ArcherShotDamage    = 10.0
	ArcherPatrolSpeed   = 50.0
	ArcherPatrolMargin  = 100.0
	ArcherBarrageDelay  = 0.2
	ArcherBarrageSpread = 0.3
	ArcherPatternPeriod = 5.0
	ArcherAimedSpeed    = 150.0
	ArcherCrossSpeed    = 120.0
	ArcherSpiralSpeed   = 130.0
	ArcherSpiralCount   = 6
	ArcherFiveSpeed     = 140.0
	ArcherFiveSpread    = 0.25
	ArcherTripleSpread  = 0.3
	ArcherBarrageSpeed  = 160.0
	ArcherBarrageShots  = 3
	ArcherBurstCount    = 8
	ArcherBurstSpeed    = 120.0
	BrawlerChargeSpeed  = 400.0
	BrawlerRageSpeed    = 500.0
	BrawlerChargeTime   = 1.0
	BrawlerChargeMargin = 50.0
	BrawlerPoundRadius  = 150.0
	BrawlerPoundDamage  = 25.0
	BrawlerSlashSpeed   = 200.0
	BrawlerSlashDamage  = 15.0
	BrawlerSlashDelay   = 0.3
	MageOrbSpeed        = 100.0
	MageOrbDamage       = 5.0
	MageOrbHP           = 10.0
	MageOrbSpawnOffset  = 60.0
	MageOrbHitRadius    = 20.0
	MageOrbStopRadius   = 10.0
	MageOrbCount        = 4
	MageOrbRadius       = 10.0
	MageTeleportDelay   = 0.5
	MageTeleportMarginX = 150.0
	MageSummonCount     = 3
	MageMeteorCount     = 5
	MageMeteorDelay     = 0.3
	MageMeteorSpeed     = 250.0
	MageMeteorDamage    = 30.0
	BossRewardOrbs      = 10
	BossRewardOrbValue  = 50
	BossRewardOrbSpread = 50.0
	BossRewardPowerUps  = 3
	BossRewardSpreadX   = 60.0
	BossRewardSpreadY   = 40.0
)
