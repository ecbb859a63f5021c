package system

import (
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/entity"
	"go-ball-brawler/internal/event"
	"go-ball-brawler/internal/types"
	prng "go-ball-brawler/internal/utils"
	vec "go-ball-brawler/pkg/utils"
)

type spawnedEnemy struct {
	Type   component.EnemyType
	Column int
	Y      float64
}

type firedProjectile struct {
	Pos, Vel vec.Vector2
	Damage   float64
	Owner    types.EntityID
}

// fakeContext records everything bosses and the director ask the world to do.
type fakeContext struct {
	player      vec.Vector2
	damage      []float64
	projectiles []firedProjectile
	enemies     []spawnedEnemy
	flashes     []float64
	xpOrbs      int
	powerUps    int
}

func newFakeContext() *fakeContext {
	return &fakeContext{player: vec.Vec(320, 720)}
}

func (c *fakeContext) PlayerPosition() vec.Vector2 { return c.player }
func (c *fakeContext) DamagePlayer(amount float64) { c.damage = append(c.damage, amount) }
func (c *fakeContext) Flash(alpha float64)         { c.flashes = append(c.flashes, alpha) }
func (c *fakeContext) SpawnXPOrb(vec.Vector2, int) { c.xpOrbs++ }
func (c *fakeContext) SpawnPowerUp(vec.Vector2, bool) {
	c.powerUps++
}

func (c *fakeContext) SpawnProjectile(pos, vel vec.Vector2, damage float64, owner types.EntityID) {
	c.projectiles = append(c.projectiles, firedProjectile{pos, vel, damage, owner})
}

func (c *fakeContext) SpawnEnemy(t component.EnemyType, column int, y float64) {
	c.enemies = append(c.enemies, spawnedEnemy{t, column, y})
}

type bossFixture struct {
	world  *entity.World
	ctx    *fakeContext
	events *event.Dispatcher
	bosses *BossSystem
}

func newBossFixture() *bossFixture {
	f := &bossFixture{
		world:  entity.NewWorld(),
		ctx:    newFakeContext(),
		events: event.NewDispatcher(),
	}
	f.bosses = NewBossSystem(f.world, f.ctx, prng.NewPRNGService(42), f.events)
	return f
}

func enemyAt(id types.EntityID, t component.EnemyType, pos vec.Vector2) *component.Enemy {
	e := CreateEnemy(id, t, ColumnAt(pos.X), pos.Y)
	e.Position = pos
	return e
}

type discardSink struct{ n int }

func (s *discardSink) Add(p ...component.Particle) { s.n += len(p) }
