package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/event"
	"go-ball-brawler/internal/input"
	"go-ball-brawler/internal/system"
	vec "go-ball-brawler/pkg/utils"
)

const tick = 1.0 / 60

// newQuietGame returns a game with the opening wave removed so tests
// control every enemy on the field.
func newQuietGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(42, zerolog.Nop())
	require.Len(t, g.World.Enemies, config.Columns, "first wave fills every column")
	g.World.Enemies = nil
	return g
}

func idle() *input.Static {
	return &input.Static{}
}

func record(g *Game, t event.EventType) *[]event.Event {
	var got []event.Event
	g.Events.Subscribe(t, event.ListenerFunc(func(e event.Event) { got = append(got, e) }))
	return &got
}

func TestNewGameStartsPlaying(t *testing.T) {
	g := NewGame(42, zerolog.Nop())
	assert.Equal(t, component.StatePlaying, g.State())
	assert.Equal(t, 1, g.WaveIndex())
	assert.Equal(t, config.PlayerStartHP, g.World.Player.Stats.HP)
	assert.Equal(t, config.StartingBalls, g.World.Player.Inventory.Count(component.BallNormal))
	assert.NotEmpty(t, g.RunID)
}

func TestDeltaTimeIsClamped(t *testing.T) {
	g := newQuietGame(t)
	g.Update(5, idle())
	assert.InDelta(t, config.MaxDeltaTime, g.World.GameTime, 1e-9)
	g.Update(-1, idle())
	assert.InDelta(t, config.MaxDeltaTime, g.World.GameTime, 1e-9)
}

func TestSecondWindThenGameOver(t *testing.T) {
	g := newQuietGame(t)
	over := record(g, event.GameOver)
	p := g.World.Player
	g.Modifiers.EnableSecondWind()

	p.Stats.HP = 10
	g.DamagePlayer(1000)
	require.Equal(t, 0.0, p.Stats.HP)
	g.Update(tick, idle())

	assert.Equal(t, p.Stats.MaxHP*0.5, p.Stats.HP)
	assert.True(t, g.Modifiers.SecondWindUsed())
	assert.Equal(t, component.StatePlaying, g.State())

	p.Stats.Invincibility = 0
	g.DamagePlayer(1000)
	g.Update(tick, idle())
	assert.Equal(t, component.StateGameOver, g.State())
	assert.Len(t, *over, 1)
}

func TestEnemyDeathHandledOnce(t *testing.T) {
	g := newQuietGame(t)
	killed := record(g, event.EnemyKilled)
	g.SpawnEnemy(component.EnemyMelee, 0, 200)
	system.DamageEnemy(g.World.Enemies[0], 1000)

	g.Update(tick, idle())
	g.Update(tick, idle())
	g.Update(tick, idle())

	assert.Equal(t, 1, g.World.Stats.EnemiesKilled)
	assert.Equal(t, 1, g.World.Progress.EnemiesDefeated)
	assert.Len(t, *killed, 1)
	assert.Len(t, g.World.XPOrbs, 1)
	assert.Empty(t, g.World.Enemies)
}

func TestSpawnerDeathCallsReinforcement(t *testing.T) {
	g := newQuietGame(t)
	g.SpawnEnemy(component.EnemySpawner, 3, 200)
	system.DamageEnemy(g.World.Enemies[0], 1000)

	g.Update(tick, idle())

	require.Len(t, g.World.Enemies, 2)
	reinforcement := g.World.Enemies[1]
	assert.Equal(t, component.EnemyMelee, reinforcement.Type)
	assert.Contains(t, []int{2, 4}, reinforcement.Column)
}

func TestContactKillGivesNoReward(t *testing.T) {
	g := newQuietGame(t)
	p := g.World.Player
	g.SpawnEnemy(component.EnemyMelee, system.ColumnAt(p.Position.X), p.Position.Y)
	e := g.World.Enemies[0]
	e.Position = p.Position

	g.Update(tick, idle())

	assert.Less(t, p.Stats.HP, config.PlayerStartHP)
	assert.False(t, e.Alive())
	assert.Zero(t, g.World.Stats.EnemiesKilled)
	assert.Empty(t, g.World.XPOrbs)
}

func TestThrowAndRedraw(t *testing.T) {
	g := newQuietGame(t)
	thrown := record(g, event.BallThrown)
	p := g.World.Player

	g.Update(tick, idle())
	held := system.HeldBall(g.World.Balls)
	require.NotNil(t, held)

	aim := &input.Static{S: input.State{Primary: true, Pointer: vec.Vec(p.Position.X, 100)}}
	g.Update(tick, aim)

	assert.False(t, held.Held)
	assert.Less(t, held.Velocity.Y, 0.0)
	assert.Equal(t, 1, g.World.Stats.BallsThrown)
	assert.Equal(t, config.StartingBalls-1, p.Inventory.Count(component.BallNormal))
	assert.Len(t, *thrown, 1)
	assert.Nil(t, system.HeldBall(g.World.Balls), "next ball waits for the respawn delay")
	assert.False(t, aim.S.Primary, "the press is consumed")

	for i := 0; i < 3; i++ {
		g.Update(0.05, idle())
	}
	assert.NotNil(t, system.HeldBall(g.World.Balls))
	assert.Equal(t, 1, countHeld(g.World.Balls))
}

func countHeld(balls []*component.Ball) int {
	n := 0
	for _, b := range balls {
		if b.Held {
			n++
		}
	}
	return n
}

func TestCaughtBallReturnsToInventory(t *testing.T) {
	g := newQuietGame(t)
	caught := record(g, event.BallCaught)
	p := g.World.Player
	p.Inventory.Remove(component.BallNormal)

	b := system.CreateBall(vec.Vec(40, config.BallBottomY-config.BallRadius-1), vec.Vec(0, 1), component.BallNormal, 1, config.BallRadius)
	b.ID = g.World.NewEntity()
	g.World.Balls = append(g.World.Balls, b)

	g.Update(tick, idle())

	assert.Equal(t, config.StartingBalls, p.Inventory.Count(component.BallNormal))
	assert.Len(t, *caught, 1)
	assert.False(t, b.Returned, "credited once")

	g.Update(tick, idle())
	assert.Len(t, *caught, 1)
}

func TestPauseFreezesPlay(t *testing.T) {
	g := newQuietGame(t)
	g.Update(tick, &input.Static{S: input.State{Pause: true}})
	require.Equal(t, component.StatePaused, g.State())

	survived := g.World.Stats.TimeSurvived
	progress := g.World.Progress.Progress
	g.Update(tick, idle())
	assert.Equal(t, survived, g.World.Stats.TimeSurvived)
	assert.Equal(t, progress, g.World.Progress.Progress)

	g.Update(tick, &input.Static{S: input.State{Pause: true}})
	assert.Equal(t, component.StatePlaying, g.State())
}

func TestLevelUpChoice(t *testing.T) {
	g := newQuietGame(t)
	chosen := record(g, event.UpgradeChosen)
	p := g.World.Player

	g.SpawnXPOrb(p.Position, p.Stats.XPToNextLevel)
	g.Update(tick, idle())

	require.Equal(t, component.StateLevelUp, g.State())
	assert.Equal(t, 2, p.Stats.Level)
	require.Len(t, g.UpgradeOptions(), config.UpgradeOptionCount)

	progress := g.World.Progress.Progress
	g.Update(tick, idle())
	assert.Equal(t, progress, g.World.Progress.Progress, "play is suspended while choosing")

	g.Update(tick, &input.Static{S: input.State{Choice: 2}})
	assert.Equal(t, component.StatePlaying, g.State())
	assert.Len(t, *chosen, 1)
}

func TestLevelUpPickWithPointer(t *testing.T) {
	g := newQuietGame(t)
	p := g.World.Player
	g.SpawnXPOrb(p.Position, p.Stats.XPToNextLevel)
	g.Update(tick, idle())
	require.Equal(t, component.StateLevelUp, g.State())

	miss := &input.Static{S: input.State{Primary: true, Pointer: vec.Vec(5, 5)}}
	g.Update(tick, miss)
	assert.Equal(t, component.StateLevelUp, g.State())

	card := system.UpgradeCardRect(0)
	hit := &input.Static{S: input.State{Primary: true, Pointer: vec.Vec(card.X+10, card.Y+10)}}
	g.pointer = hit.S.Pointer
	assert.Equal(t, 0, g.Snapshot().HoveredOption)
	g.Update(tick, hit)
	assert.Equal(t, component.StatePlaying, g.State())
}

func TestBossDefeatStartsNextSection(t *testing.T) {
	g := newQuietGame(t)
	cleared := record(g, event.SectionCleared)
	g.World.Progress.Progress = config.ProgressMax
	g.World.Progress.BossActive = true
	boss := g.bosses.Spawn(component.BossArcherKing)
	boss.HP = 0

	g.Update(0.1, idle())
	assert.True(t, boss.Defeated)
	assert.Equal(t, 1, g.World.Stats.BossesKilled)
	assert.Len(t, g.World.XPOrbs, 10)
	assert.Len(t, g.World.PowerUps, 3)

	for i := 0; i < 25; i++ {
		g.Update(0.1, idle())
	}
	assert.Equal(t, 1, g.World.Progress.Section)
	assert.Nil(t, g.World.Boss)
	assert.False(t, g.World.Progress.BossActive)
	assert.Less(t, g.World.Progress.Progress, config.WaveIntervalPercent)
	assert.Len(t, *cleared, 1)
}

func TestBossLifeStealUsesDamageBeforeMultiplier(t *testing.T) {
	g := newQuietGame(t)
	boss := g.bosses.Spawn(component.BossBrawlerChief)
	g.Modifiers.EnableLifeSteal()
	p := g.World.Player
	p.CritChance = 0
	p.DamageMultiplier = 2
	p.Stats.HP = 50

	ball := system.CreateBall(boss.Position, vec.Vec(0, -1), component.BallNormal, 1, config.BallRadius)
	g.World.Balls = []*component.Ball{ball}
	dmg := ball.Damage + g.Modifiers.BaseDamageBonus()

	g.resolveBossHits()
	assert.InDelta(t, boss.MaxHP-dmg*2*g.Modifiers.BallDamageMultiplier(), boss.HP, 1e-9)
	assert.InDelta(t, 50+dmg*config.LifeStealPercent, p.Stats.HP, 1e-9)
}

func TestGameOverRestart(t *testing.T) {
	g := newQuietGame(t)
	firstRun := g.RunID
	g.World.Player.Stats.HP = 0
	g.Update(tick, idle())
	require.Equal(t, component.StateGameOver, g.State())

	g.Update(tick, &input.Static{S: input.State{Primary: true}})
	assert.Equal(t, component.StatePlaying, g.State())
	assert.Equal(t, config.PlayerStartHP, g.World.Player.Stats.HP)
	assert.NotEqual(t, firstRun, g.RunID)
	assert.Len(t, g.World.Enemies, config.Columns)
}

func TestCraftSwapsHeldBall(t *testing.T) {
	g := newQuietGame(t)
	p := g.World.Player
	p.Inventory.Add(component.BallNormal, 5-config.StartingBalls)
	g.Update(tick, idle())
	require.NotNil(t, system.HeldBall(g.World.Balls))

	g.Update(tick, &input.Static{S: input.State{Craft: true}})

	assert.Zero(t, p.Inventory.Count(component.BallNormal))
	assert.Equal(t, 1, p.Inventory.Count(component.BallLightning))
	held := system.HeldBall(g.World.Balls)
	require.NotNil(t, held)
	assert.Equal(t, component.BallLightning, held.Type)
	assert.Equal(t, 1, countHeld(g.World.Balls))
}

func TestPowerUpEffectsReachEnemies(t *testing.T) {
	g := newQuietGame(t)
	g.SpawnEnemy(component.EnemyTank, 2, 200)
	e := g.World.Enemies[0]

	g.FreezeAll(3)
	assert.True(t, e.HasEffect(component.StatusFreeze))

	hp := e.HP
	g.BombAll(50)
	assert.Equal(t, hp-50, e.HP)
	assert.Greater(t, g.FlashAlpha(), 0.0)
}

func TestSnapshotIsACopy(t *testing.T) {
	g := NewGame(7, zerolog.Nop())
	g.Update(tick, idle())

	snap := g.Snapshot()
	require.NotEmpty(t, snap.Enemies)
	snap.Enemies[0].HP = -1
	snap.Player.Stats.HP = 1
	snap.Player.Inventory.Add(component.BallFire, 3)

	assert.NotEqual(t, -1.0, g.World.Enemies[0].HP)
	assert.Equal(t, config.PlayerStartHP, g.World.Player.Stats.HP)
	assert.Zero(t, g.World.Player.Inventory.Count(component.BallFire))
	assert.Equal(t, -1, snap.HoveredOption)
	assert.InDelta(t, 0.01, snap.HPFraction(), 1e-9)
	assert.InDelta(t, 1.0, g.Snapshot().HPFraction(), 1e-9)
}

func TestSnapshotAimLine(t *testing.T) {
	g := newQuietGame(t)
	g.Update(tick, &input.Static{S: input.State{Pointer: vec.Vec(100, 300)}})
	snap := g.Snapshot()
	require.NotEmpty(t, snap.Aim)
	held := system.HeldBall(g.World.Balls)
	require.NotNil(t, held)
	assert.Equal(t, held.Position, snap.Aim[0])
}
