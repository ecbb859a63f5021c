package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/entity"
	"go-ball-brawler/internal/event"
	prng "go-ball-brawler/internal/utils"
	vec "go-ball-brawler/pkg/utils"
)

func TestGenerateUpgradeOptions(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		inv := component.NewInventory(3)
		inv.Add(component.BallFire, 1)

		options := GenerateUpgradeOptions(prng.NewPRNGService(seed), &inv)

		require.Len(t, options, config.UpgradeOptionCount)
		seen := map[string]bool{}
		for _, o := range options {
			assert.False(t, seen[o.ID], "seed %d offered %s twice", seed, o.ID)
			seen[o.ID] = true
			assert.NotEqual(t, "unlock_fire", o.ID, "fire is already unlocked")
		}
	}
}

func TestApplyUpgrade(t *testing.T) {
	p := CreatePlayer()
	mods := component.NewModifiers()
	target := UpgradeTarget{Player: p, Modifiers: &mods}

	assert.True(t, ApplyUpgrade("max_hp", target))
	assert.Equal(t, 110.0, p.Stats.MaxHP)
	assert.Equal(t, 110.0, p.Stats.HP)

	ApplyUpgrade("add_5_balls", target)
	assert.Equal(t, 8, p.Inventory.Count(component.BallNormal))

	ApplyUpgrade("unlock_ice", target)
	assert.Equal(t, 2, p.Inventory.Count(component.BallIce))

	ApplyUpgrade("ball_damage", target)
	ApplyUpgrade("ball_damage", target)
	assert.Equal(t, 2.25, mods.BallDamageMultiplier())

	ApplyUpgrade("second_wind", target)
	assert.True(t, mods.HasSecondWind())

	assert.False(t, ApplyUpgrade("nope", target))
}

func TestUpgradeCardAt(t *testing.T) {
	assert.Equal(t, 0, UpgradeCardAt(vec.Vec(320, 200), 3))
	assert.Equal(t, 1, UpgradeCardAt(vec.Vec(320, 300), 3))
	assert.Equal(t, -1, UpgradeCardAt(vec.Vec(320, 287), 3), "gap between cards")
	assert.Equal(t, -1, UpgradeCardAt(vec.Vec(50, 200), 3))
	assert.Equal(t, -1, UpgradeCardAt(vec.Vec(320, 300), 1))
}

func TestCrafting(t *testing.T) {
	p := CreatePlayer()
	assert.False(t, CanUpgrade(p, component.BallNormal))
	_, ok := UpgradeFirstAvailable(p)
	assert.False(t, ok)
	assert.Equal(t, 3, p.Inventory.Count(component.BallNormal), "nothing spent")

	p.Inventory.Add(component.BallNormal, 3)
	p.Inventory.Add(component.BallFire, 5)
	assert.Equal(t, []component.BallType{component.BallNormal, component.BallFire}, CraftableTypes(p))

	recipe, ok := UpgradeFirstAvailable(p)
	require.True(t, ok)
	assert.Equal(t, component.BallLightning, recipe.Output)
	assert.Equal(t, 1, p.Inventory.Count(component.BallNormal))
	assert.Equal(t, 1, p.Inventory.Count(component.BallLightning))
	assert.Equal(t, component.BallLightning, p.SelectedBall)

	assert.True(t, UpgradeBall(p, component.BallFire, component.BallBomb))
	assert.Zero(t, p.Inventory.Count(component.BallFire))
	assert.Equal(t, 1, p.Inventory.Count(component.BallBomb))
}

func TestStateSystemFlow(t *testing.T) {
	world := entity.NewWorld()
	world.Player = CreatePlayer()
	events := event.NewDispatcher()
	var chosen, over int
	events.Subscribe(event.UpgradeChosen, event.ListenerFunc(func(event.Event) { chosen++ }))
	events.Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) { over++ }))
	mods := component.NewModifiers()
	target := UpgradeTarget{Player: world.Player, Modifiers: &mods}
	s := NewStateSystem(world, prng.NewPRNGService(7), events)

	assert.False(t, s.Choose(0, target), "nothing on offer")

	s.QueueLevelUps(2)
	assert.Equal(t, component.StateLevelUp, world.State)
	assert.Len(t, s.Options(), config.UpgradeOptionCount)
	assert.Equal(t, 2, s.Pending())

	s.TogglePause()
	assert.Equal(t, component.StateLevelUp, world.State, "cannot pause a choice")

	assert.False(t, s.Choose(3, target))
	require.True(t, s.Choose(0, target))
	assert.Equal(t, component.StateLevelUp, world.State, "second choice opens")
	assert.Equal(t, 1, s.Pending())

	require.True(t, s.Choose(2, target))
	assert.Equal(t, component.StatePlaying, world.State)
	assert.Zero(t, s.Pending())
	assert.Empty(t, s.Options())
	assert.Equal(t, 2, chosen)

	s.TogglePause()
	assert.Equal(t, component.StatePaused, world.State)
	s.QueueLevelUps(1)
	assert.Equal(t, component.StatePaused, world.State, "choices wait for play to resume")
	assert.Equal(t, 1, s.Pending())
	s.TogglePause()
	assert.Equal(t, component.StateLevelUp, world.State)

	s.GameOver()
	s.GameOver()
	assert.Equal(t, component.StateGameOver, world.State)
	assert.Equal(t, 1, over)
	assert.Zero(t, s.Pending())
	s.TogglePause()
	assert.Equal(t, component.StateGameOver, world.State)
}
