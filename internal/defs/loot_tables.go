// internal/defs/loot_tables.go
package defs

import "go-ball-brawler/internal/component"

// LootEntry представляет одну запись в таблице выпадения.
// ID — идентификатор предмета, а Weight — его относительный шанс.
type LootEntry struct {
	ID     string `yaml:"id"`
	Weight int    `yaml:"weight"`
}

// PowerUpPool — обычные бонусы, все равновероятны.
var PowerUpPool = []LootEntry{
	{ID: component.PowerUpHealth.String(), Weight: 1},
	{ID: component.PowerUpSpeed.String(), Weight: 1},
	{ID: component.PowerUpDamage.String(), Weight: 1},
	{ID: component.PowerUpShield.String(), Weight: 1},
	{ID: component.PowerUpXP.String(), Weight: 1},
	{ID: component.PowerUpMagnet.String(), Weight: 1},
	{ID: component.PowerUpFreeze.String(), Weight: 1},
	{ID: component.PowerUpBomb.String(), Weight: 1},
}

// RarePowerUpPool выпадает только с элитных врагов.
var RarePowerUpPool = []LootEntry{
	{ID: component.PowerUpInvincibility.String(), Weight: 1},
}
