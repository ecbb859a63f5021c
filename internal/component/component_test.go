package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventoryNeverNegative(t *testing.T) {
	inv := NewInventory(1)
	assert.True(t, inv.Remove(BallNormal))
	assert.False(t, inv.Remove(BallNormal))
	assert.Equal(t, 0, inv.Count(BallNormal))
	assert.False(t, inv.Remove(BallFire))
	assert.Equal(t, 0, inv.Count(BallFire))
}

func TestInventoryAddIgnoresNonPositive(t *testing.T) {
	inv := NewInventory(0)
	inv.Add(BallBomb, 0)
	inv.Add(BallBomb, -3)
	assert.Equal(t, 0, inv.Count(BallBomb))
	assert.False(t, inv.Unlocked(BallBomb))

	inv.Add(BallBomb, 2)
	assert.Equal(t, 2, inv.Count(BallBomb))
	assert.True(t, inv.Unlocked(BallBomb))
	assert.Equal(t, 2, inv.Total())
}

func TestInventoryUnlockSurvivesEmptying(t *testing.T) {
	inv := NewInventory(0)
	assert.True(t, inv.Unlocked(BallNormal))
	inv.Add(BallIce, 1)
	inv.Remove(BallIce)
	assert.True(t, inv.Unlocked(BallIce))
}

func TestParseNames(t *testing.T) {
	for bt := BallNormal; bt < BallTypeCount; bt++ {
		got, ok := ParseBallType(bt.String())
		assert.True(t, ok)
		assert.Equal(t, bt, got)
	}
	for et := EnemyMelee; et < EnemyTypeCount; et++ {
		got, ok := ParseEnemyType(et.String())
		assert.True(t, ok)
		assert.Equal(t, et, got)
	}
	_, ok := ParseBallType("plasma")
	assert.False(t, ok)
	_, ok = ParsePowerUpType("invincibility")
	assert.True(t, ok)
}

func TestPhasingTypes(t *testing.T) {
	assert.True(t, BallGhost.Phases())
	assert.True(t, BallLightning.Phases())
	assert.False(t, BallBomb.Phases())
	assert.False(t, BallNormal.Phases())
}

func TestModifiers(t *testing.T) {
	m := NewModifiers()
	m.ScaleBallSpeed(1.2)
	m.ScaleBallSpeed(1.2)
	assert.InDelta(t, 1.44, m.BallSpeedMultiplier(), 1e-9)

	for i := 0; i < 10; i++ {
		m.AddDropRate(0.2)
	}
	assert.Equal(t, 1.0, m.DropRateBonus())

	assert.False(t, m.ConsumeSecondWind())
	m.EnableSecondWind()
	assert.True(t, m.ConsumeSecondWind())
	assert.False(t, m.ConsumeSecondWind())
	assert.True(t, m.SecondWindUsed())
}

func TestParticleBuffer(t *testing.T) {
	var buf ParticleBuffer
	var sink ParticleSink = &buf
	sink.Add(Particle{Size: 1}, Particle{Size: 2})
	assert.Equal(t, 2, buf.Len())
}
