// internal/interfaces/game_context.go
package interfaces

import (
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/types"
	"go-ball-brawler/pkg/utils"
)

// BossContext — то, что сценарии боссов могут делать с остальным миром.
type BossContext interface {
	PlayerPosition() utils.Vector2
	DamagePlayer(amount float64)
	SpawnProjectile(pos, vel utils.Vector2, damage float64, owner types.EntityID)
	SpawnEnemy(t component.EnemyType, column int, y float64)
	Flash(alpha float64)
	SpawnXPOrb(pos utils.Vector2, value int)
	SpawnPowerUp(pos utils.Vector2, elite bool)
}

// EnemySpawner создаёт врагов от имени директора волн.
type EnemySpawner interface {
	SpawnEnemy(t component.EnemyType, column int, y float64)
}
