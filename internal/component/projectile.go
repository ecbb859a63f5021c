// internal/component/projectile.go
package component

import (
	"go-ball-brawler/internal/types"
	"go-ball-brawler/pkg/utils"
)

// Projectile — стрела врага или босса, летит по прямой.
type Projectile struct {
	ID       types.EntityID
	Position utils.Vector2
	Velocity utils.Vector2
	Damage   float64
	Owner    types.EntityID
}

// XPOrb — сфера опыта. До истечения MagnetTimer не притягивается.
type XPOrb struct {
	ID          types.EntityID
	Position    utils.Vector2
	Value       int
	MagnetTimer float64
}
