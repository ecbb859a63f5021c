// internal/event/types.go
package event

import (
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/types"
)

const (
	EnemyKilled      EventType = "EnemyKilled"      // Враг убит игроком
	WaveSpawned      EventType = "WaveSpawned"      // Появился новый ряд
	BossSpawned      EventType = "BossSpawned"      // Появился босс
	BossPhaseChanged EventType = "BossPhaseChanged" // Босс перешёл в новую фазу
	BossDefeated     EventType = "BossDefeated"     // Босс повержен
	SectionCleared   EventType = "SectionCleared"   // Прогресс сброшен после босса
	LevelUp          EventType = "LevelUp"
	UpgradeChosen    EventType = "UpgradeChosen"
	PowerUpCollected EventType = "PowerUpCollected"
	BallThrown       EventType = "BallThrown"
	BallCaught       EventType = "BallCaught"
	SecondWind       EventType = "SecondWind"
	GameOver         EventType = "GameOver"
)

// EnemyKilledData — данные события EnemyKilled.
type EnemyKilledData struct {
	ID   types.EntityID
	Type component.EnemyType
	XP   int
}

type WaveData struct {
	Index   int
	Section int
}

type BossData struct {
	ID    types.EntityID
	Type  component.BossType
	Name  string
	Phase int
}

type LevelUpData struct {
	Level int
}

type UpgradeData struct {
	ID string
}

type PowerUpData struct {
	Type component.PowerUpType
}

type BallData struct {
	Type component.BallType
}

type GameOverData struct {
	Level int
	Stats component.RunStats
}
