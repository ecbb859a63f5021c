// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 800
	Columns      = 8
	ColumnWidth  = ScreenWidth / Columns
	HUDHeight    = 60
	MaxDeltaTime = 0.1

	PlayerWidth   = 32
	PlayerHeight  = 32
	PlayerStartX  = ScreenWidth / 2
	PlayerStartY  = ScreenHeight - 80
	PlayerSpeed   = 200.0
	PlayerStartHP = 100.0
	StartingBalls = 3

	BallRadius       = 8.0
	BallBaseSpeed    = 300.0
	BallHoldOffsetY  = 20.0 // мяч в руке висит над игроком
	BallRespawnDelay = 0.1  // задержка перед новым мячом после броска
	BallBottomY      = ScreenHeight - 80
	PaddleMarginX    = 25.0
	PaddleOffsetY    = 15.0
	PaddleHeight     = 10.0
	PaddleDeflection = 0.5
	BallPushEpsilon  = 2.0

	TrajectoryStep          = 0.016
	TrajectoryMaxIterations = 100

	EnemySpawnOffsetY = 20.0
	MeleeRushDistance = 30.0
	MeleeRushFactor   = 0.3

	BossWidth      = 96
	BossHeight     = 96
	BossSpawnY     = HUDHeight + 100
	BossResetDelay = 2.0

	PowerUpDropChance      = 0.15
	PowerUpEliteDropChance = 0.4
	PowerUpRareChance      = 0.2
	PowerUpLifetime        = 10.0
	PowerUpFallSpeed       = 100.0
	PowerUpPickupRadius    = 30.0

	XPBaseRequirement  = 100
	XPScaling          = 1.5
	XPCollectionRadius = 80.0
	XPOrbPickupRadius  = 20.0
	XPOrbSettleTime    = 0.5
	XPOrbMagnetSpeed   = 400.0
	XPOrbFallSpeed     = 100.0
	XPOrbDespawnY      = ScreenHeight + 50

	ProgressRate        = 1.2 // процентов в секунду
	ProgressMax         = 100.0
	WaveIntervalPercent = 7.0

	ParticleLifetime = 0.8
	ParticleGravity  = 200.0

	FlashDecayRate = 2.0
	MaxCritChance  = 0.5

	UpgradeOptionCount  = 3
	UpgradeCardWidth    = 450
	UpgradeCardHeight   = 140
	UpgradeCardSpacing  = 15
	UpgradeCardStartY   = 140
	SecondWindHPPercent = 0.5
	LifeStealPercent    = 0.05

	TextCharWidth = 7
	TextOffsetY   = 4
)

var (
	BackgroundTop    = color.RGBA{10, 10, 26, 255}
	BackgroundBottom = color.RGBA{26, 26, 46, 255}
	GridColor        = color.RGBA{0, 255, 255, 24}
	BossGridColor    = color.RGBA{255, 60, 60, 32}
	HUDColor         = color.RGBA{0, 0, 0, 180}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	PlayerColor      = color.RGBA{74, 158, 255, 255}
	PaddleColor      = color.RGBA{74, 255, 255, 160}
	ShieldColor      = color.RGBA{74, 255, 255, 90}
	ProjectileColor  = color.RGBA{255, 200, 80, 255}
	XPOrbColor       = color.RGBA{74, 255, 74, 255}
	HomingOrbColor   = color.RGBA{201, 74, 255, 255}
	HealthBarColor   = color.RGBA{255, 74, 74, 255}
	XPBarColor       = color.RGBA{74, 158, 255, 255}
	ProgressBarColor = color.RGBA{255, 215, 0, 255}
	SparkleColor     = color.RGBA{255, 215, 0, 255}
	BossDeathColor   = color.RGBA{255, 215, 0, 255}
	AimGuideColor    = color.RGBA{255, 255, 255, 70}

	RarityColors = map[string]color.RGBA{
		"common":    {255, 255, 255, 255},
		"uncommon":  {74, 255, 74, 255},
		"rare":      {74, 158, 255, 255},
		"epic":      {201, 74, 255, 255},
		"legendary": {255, 215, 0, 255},
	}
)

// XPForLevel возвращает порог опыта для перехода с уровня level на следующий.
func XPForLevel(level int) int {
	return int(math.Floor(XPBaseRequirement * math.Pow(XPScaling, float64(level-1))))
}
