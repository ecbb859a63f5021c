package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/defs"
	"go-ball-brawler/internal/event"
	vec "go-ball-brawler/pkg/utils"
)

func TestPhaseFor(t *testing.T) {
	brawler := defs.BossLibrary[component.BossBrawlerChief]
	tests := []struct {
		frac float64
		want int
	}{
		{1, 1},
		{0.61, 1},
		{0.6, 2},
		{0.31, 2},
		{0.3, 3},
		{0, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PhaseFor(brawler, tt.frac), "frac %v", tt.frac)
	}
	assert.Equal(t, 2, PhaseFor(defs.BossLibrary[component.BossArcherKing], 0.5))
}

func TestSpawnBoss(t *testing.T) {
	f := newBossFixture()
	var spawned []event.Event
	f.events.Subscribe(event.BossSpawned, event.ListenerFunc(func(e event.Event) { spawned = append(spawned, e) }))

	boss := f.bosses.Spawn(component.BossDarkMage)

	assert.Same(t, boss, f.world.Boss)
	assert.Equal(t, 1200.0, boss.HP)
	assert.Equal(t, 1, boss.Phase)
	assert.Equal(t, vec.Vec(config.ScreenWidth/2, config.BossSpawnY), boss.Position)
	assert.NotNil(t, boss.Mage)
	assert.Nil(t, boss.Brawler)
	require.Len(t, spawned, 1)
	assert.Equal(t, "The Dark Mage", spawned[0].Data.(event.BossData).Name)

	random := f.bosses.SpawnRandom()
	assert.Less(t, int(random.Type), int(component.BossTypeCount))
}

func TestBossPhaseNeverRegresses(t *testing.T) {
	f := newBossFixture()
	var phases []int
	f.events.Subscribe(event.BossPhaseChanged, event.ListenerFunc(func(e event.Event) {
		phases = append(phases, e.Data.(event.BossData).Phase)
	}))
	boss := f.bosses.Spawn(component.BossBrawlerChief)

	boss.HP = boss.MaxHP * 0.5
	f.bosses.Update(0.01)
	assert.Equal(t, 2, boss.Phase)
	assert.Contains(t, f.ctx.flashes, 0.3)

	boss.HP = boss.MaxHP
	f.bosses.Update(0.01)
	assert.Equal(t, 2, boss.Phase, "healing does not undo a phase")

	boss.HP = 1
	f.bosses.Update(0.01)
	assert.Equal(t, 3, boss.Phase)
	assert.Contains(t, f.ctx.flashes, 0.4)
	assert.Equal(t, []int{2, 3}, phases)
}

func TestBossDefeatHandledOnce(t *testing.T) {
	f := newBossFixture()
	var defeated int
	f.events.Subscribe(event.BossDefeated, event.ListenerFunc(func(event.Event) { defeated++ }))
	boss := f.bosses.Spawn(component.BossArcherKing)
	DamageBoss(boss, 10000)
	require.Equal(t, 0.0, boss.HP)

	assert.True(t, f.bosses.Update(0.1))
	assert.True(t, boss.Defeated)
	assert.Equal(t, defs.BossRewardOrbs, f.ctx.xpOrbs)
	assert.Equal(t, defs.BossRewardPowerUps, f.ctx.powerUps)
	assert.Contains(t, f.ctx.flashes, 0.6)
	assert.Equal(t, 1, f.world.Stats.BossesKilled)
	assert.Greater(t, f.world.Particles.Len(), 0)

	assert.False(t, f.bosses.Update(0.1))
	assert.Equal(t, 1, defeated)
	assert.Nil(t, f.world.LiveBoss())
}

func TestScheduledActionsDieWithBoss(t *testing.T) {
	f := newBossFixture()
	boss := f.bosses.Spawn(component.BossArcherKing)
	boss.Phase = 2

	f.bosses.ArcherVolley(boss, ArcherBarrage)
	require.Len(t, f.ctx.projectiles, 1, "first shot fires immediately")
	require.Equal(t, defs.ArcherBarrageShots-1, f.bosses.Pending())

	boss.HP = 0
	f.bosses.Update(1)

	assert.Len(t, f.ctx.projectiles, 1, "shots of a dead boss never fire")
	assert.Zero(t, f.bosses.Pending())
}

func TestScheduledActionsSkipReplacedBoss(t *testing.T) {
	f := newBossFixture()
	first := f.bosses.Spawn(component.BossBrawlerChief)
	f.bosses.BrawlerAttack(first, BrawlerSwordSlash)
	require.Len(t, f.ctx.projectiles, 1)

	second := f.bosses.Spawn(component.BossBrawlerChief)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Zero(t, f.bosses.Pending())
	f.bosses.Update(1)
	assert.Len(t, f.ctx.projectiles, 1)
}

func TestArcherVolleys(t *testing.T) {
	tests := []struct {
		name    string
		phase   int
		pattern int
		shots   int
		speed   float64
	}{
		{"aimed", 1, ArcherAimed, 1, defs.ArcherAimedSpeed},
		{"triple", 1, ArcherTriple, 3, defs.ArcherAimedSpeed},
		{"cross", 1, ArcherCross, 4, defs.ArcherCrossSpeed},
		{"aimed again", 1, ArcherAimedAgain, 1, defs.ArcherAimedSpeed},
		{"spiral", 2, ArcherSpiral, defs.ArcherSpiralCount, defs.ArcherSpiralSpeed},
		{"five spread", 2, ArcherFiveSpread, 5, defs.ArcherFiveSpeed},
		{"circle", 2, ArcherCircleBurst, defs.ArcherBurstCount, defs.ArcherBurstSpeed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBossFixture()
			boss := f.bosses.Spawn(component.BossArcherKing)
			boss.Phase = tt.phase

			f.bosses.ArcherVolley(boss, tt.pattern)

			require.Len(t, f.ctx.projectiles, tt.shots)
			for _, p := range f.ctx.projectiles {
				assert.InDelta(t, tt.speed, p.Vel.Len(), 1e-9)
				assert.Equal(t, defs.ArcherShotDamage, p.Damage)
				assert.Equal(t, boss.ID, p.Owner)
			}
		})
	}
}

func TestArcherAimedShotTargetsPlayer(t *testing.T) {
	f := newBossFixture()
	boss := f.bosses.Spawn(component.BossArcherKing)
	f.bosses.ArcherVolley(boss, ArcherAimed)

	require.Len(t, f.ctx.projectiles, 1)
	want := f.ctx.player.Sub(boss.Position).Normalize()
	got := f.ctx.projectiles[0].Vel.Normalize()
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
}

func TestArcherKingAttacksOnInterval(t *testing.T) {
	f := newBossFixture()
	f.bosses.Spawn(component.BossArcherKing)

	f.bosses.Update(3.9)
	assert.Empty(t, f.ctx.projectiles)
	f.bosses.Update(0.2)
	assert.Len(t, f.ctx.projectiles, 1)
	assert.InDelta(t, 0.1, f.world.Boss.AttackTimer, 1e-9, "remainder carries over")
}

func TestArcherKingPatrolsInPhaseTwo(t *testing.T) {
	f := newBossFixture()
	boss := f.bosses.Spawn(component.BossArcherKing)
	x := boss.Position.X

	f.bosses.Update(0.5)
	assert.Equal(t, x, boss.Position.X)

	boss.HP = boss.MaxHP * 0.4
	f.bosses.Update(0.5)
	assert.NotEqual(t, x, boss.Position.X)
}

func TestBrawlerCharge(t *testing.T) {
	f := newBossFixture()
	boss := f.bosses.Spawn(component.BossBrawlerChief)
	f.ctx.player = vec.Vec(500, 720)

	f.bosses.BrawlerAttack(boss, BrawlerCharge)
	require.True(t, boss.Brawler.Charging)
	assert.Equal(t, vec.Vec(defs.BrawlerChargeSpeed, 0), boss.Brawler.ChargeVelocity)

	x := boss.Position.X
	f.bosses.Update(0.1)
	assert.InDelta(t, x+defs.BrawlerChargeSpeed*0.1, boss.Position.X, 1e-9)

	f.bosses.Update(1)
	assert.False(t, boss.Brawler.Charging)
}

func TestBrawlerChargeStopsAtEdge(t *testing.T) {
	f := newBossFixture()
	boss := f.bosses.Spawn(component.BossBrawlerChief)
	f.ctx.player = vec.Vec(10, 720)
	boss.Position.X = 60

	f.bosses.BrawlerAttack(boss, BrawlerCharge)
	f.bosses.Update(0.1)
	assert.False(t, boss.Brawler.Charging)
}

func TestBrawlerGroundPound(t *testing.T) {
	f := newBossFixture()
	boss := f.bosses.Spawn(component.BossBrawlerChief)

	f.bosses.BrawlerAttack(boss, BrawlerGroundPound)
	assert.Empty(t, f.ctx.damage, "player out of reach")
	require.Len(t, f.ctx.enemies, 2)
	for _, e := range f.ctx.enemies {
		assert.Equal(t, component.EnemyMelee, e.Type)
		assert.Equal(t, float64(config.HUDHeight+config.EnemySpawnOffsetY), e.Y)
	}

	f.ctx.player = boss.Position.Add(vec.Vec(0, 100))
	boss.Phase = 2
	f.bosses.BrawlerAttack(boss, BrawlerGroundPound)
	assert.Equal(t, []float64{defs.BrawlerPoundDamage}, f.ctx.damage)
	assert.Len(t, f.ctx.enemies, 6)
}

func TestBrawlerSwordSlashIsStaggered(t *testing.T) {
	f := newBossFixture()
	boss := f.bosses.Spawn(component.BossBrawlerChief)

	f.bosses.BrawlerAttack(boss, BrawlerSwordSlash)
	assert.Len(t, f.ctx.projectiles, 1)
	f.bosses.Update(0.35)
	assert.Len(t, f.ctx.projectiles, 2)
	f.bosses.Update(0.35)
	require.Len(t, f.ctx.projectiles, 3)
	for _, p := range f.ctx.projectiles {
		assert.Equal(t, vec.Vec(0, defs.BrawlerSlashSpeed), p.Vel)
		assert.Equal(t, defs.BrawlerSlashDamage, p.Damage)
	}
}

func TestMageSummonsAndSteersOrbs(t *testing.T) {
	f := newBossFixture()
	boss := f.bosses.Spawn(component.BossDarkMage)

	f.bosses.MageAttack(boss, MageMissiles)
	require.Len(t, boss.Mage.Orbs, defs.MageOrbCount)
	ids := map[int]bool{}
	for _, o := range boss.Mage.Orbs {
		ids[int(o.ID)] = true
		assert.InDelta(t, defs.MageOrbSpawnOffset, vec.Distance(o.Position, boss.Position), 1e-9)
	}
	assert.Len(t, ids, defs.MageOrbCount)

	boss.Mage.Orbs = []component.HomingOrb{
		{ID: 1, Position: f.ctx.player.Add(vec.Vec(15, 0)), HP: 10},
		{ID: 2, Position: vec.Vec(100, 200), HP: 10},
	}
	f.bosses.Update(0.1)

	assert.Equal(t, []float64{defs.MageOrbDamage}, f.ctx.damage)
	require.Len(t, boss.Mage.Orbs, 1)
	assert.Greater(t, boss.Mage.Orbs[0].Position.Y, 200.0, "orb homes toward the player")
}

func TestMageTeleport(t *testing.T) {
	f := newBossFixture()
	boss := f.bosses.Spawn(component.BossDarkMage)
	origin := boss.Position

	f.bosses.MageAttack(boss, MageTeleport)
	assert.True(t, boss.Mage.Teleporting)
	f.bosses.MageAttack(boss, MageTeleport)
	assert.Equal(t, 1, f.bosses.Pending(), "one teleport at a time")

	f.bosses.Update(defs.MageTeleportDelay)

	assert.False(t, boss.Mage.Teleporting)
	assert.GreaterOrEqual(t, boss.Position.X, defs.MageTeleportMarginX)
	assert.LessOrEqual(t, boss.Position.X, config.ScreenWidth-defs.MageTeleportMarginX)
	assert.GreaterOrEqual(t, boss.Position.Y, float64(config.HUDHeight+100))
	assert.LessOrEqual(t, boss.Position.Y, float64(config.HUDHeight+200))
	require.Len(t, f.ctx.enemies, defs.MageSummonCount)
	for _, e := range f.ctx.enemies {
		assert.Equal(t, component.EnemyArcher, e.Type)
		assert.Equal(t, ColumnAt(origin.X), e.Column)
		assert.Equal(t, origin.Y, e.Y)
	}
}

func TestMageMeteorsNeedPhaseThree(t *testing.T) {
	f := newBossFixture()
	boss := f.bosses.Spawn(component.BossDarkMage)

	f.bosses.MageAttack(boss, MageMeteor)
	assert.Len(t, boss.Mage.Orbs, defs.MageOrbCount)
	assert.Empty(t, f.ctx.projectiles)

	boss.Phase = 3
	f.bosses.MageAttack(boss, MageMeteor)
	require.Len(t, f.ctx.projectiles, 1)
	assert.Equal(t, vec.Vec(0, defs.MageMeteorSpeed), f.ctx.projectiles[0].Vel)
	assert.Equal(t, defs.MageMeteorDamage, f.ctx.projectiles[0].Damage)
	assert.Equal(t, defs.MageMeteorCount-1, f.bosses.Pending())
}
