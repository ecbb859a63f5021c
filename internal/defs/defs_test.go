package defs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ball-brawler/internal/component"
)

func TestEmbeddedBallTable(t *testing.T) {
	require.Len(t, BallLibrary, int(component.BallTypeCount))

	normal := Ball(component.BallNormal)
	assert.Equal(t, 10.0, normal.Damage)
	assert.Equal(t, 1.0, normal.Speed)
	assert.Equal(t, color.RGBA{0x4A, 0x9E, 0xFF, 0xFF}, normal.RGBA)

	bomb := Ball(component.BallBomb)
	assert.Equal(t, 50.0, bomb.Damage)
	assert.Equal(t, 0.8, bomb.Speed)
	assert.Equal(t, 100.0, bomb.ExplosionRadius)

	assert.Equal(t, 1.4, Ball(component.BallGhost).Speed)
	assert.Equal(t, 3, Ball(component.BallLightning).ChainCount)
}

func TestEmbeddedEnemyTable(t *testing.T) {
	require.Len(t, EnemyLibrary, int(component.EnemyTypeCount))

	melee := Enemy(component.EnemyMelee)
	assert.Equal(t, 30.0, melee.HP)
	assert.Equal(t, 20, melee.XP)
	assert.Equal(t, 38.0, melee.Size)

	archer := Enemy(component.EnemyArcher)
	assert.Equal(t, 8.0, archer.AttackInterval)
	assert.Equal(t, 120.0, archer.ProjectileSpeed)

	elite := Enemy(component.EnemyElite)
	assert.Greater(t, elite.AttackInterval, archer.AttackInterval)

	assert.Equal(t, 8.0, Enemy(component.EnemySpawner).AttackInterval)
}

func TestEmbeddedWavePatterns(t *testing.T) {
	require.Len(t, WavePatterns, 8)
	first := PatternForWave(0)
	assert.Equal(t, component.EnemyMelee, first[0])
	assert.Equal(t, component.EnemyArcher, first[1])
	assert.Equal(t, PatternForWave(3), PatternForWave(11))
	assert.Equal(t, component.EnemySpawner, PatternForWave(7)[1])
}

func TestEmbeddedUpgradeCatalog(t *testing.T) {
	require.Len(t, UpgradeCatalog, 20)
	counts := map[UpgradeCategory]int{}
	for _, u := range UpgradeCatalog {
		counts[u.Category]++
		assert.NotEmpty(t, u.Name, u.ID)
	}
	assert.Equal(t, 6, counts[CategoryCombat])
	assert.Equal(t, 9, counts[CategoryBall])
	assert.Equal(t, 5, counts[CategoryUtility])
}

func TestUnlockTarget(t *testing.T) {
	bt, ok := UpgradeDefinition{ID: "unlock_ice"}.UnlockTarget()
	assert.True(t, ok)
	assert.Equal(t, component.BallIce, bt)

	_, ok = UpgradeDefinition{ID: "max_hp"}.UnlockTarget()
	assert.False(t, ok)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#FF8C4A")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xFF, 0x8C, 0x4A, 0xFF}, c)

	c, err = ParseHexColor("11223344")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x11, 0x22, 0x33, 0x44}, c)

	_, err = ParseHexColor("#12")
	assert.Error(t, err)
	_, err = ParseHexColor("#GGGGGG")
	assert.Error(t, err)
}

func TestBossTable(t *testing.T) {
	ak := BossLibrary[component.BossArcherKing]
	assert.Equal(t, 500.0, ak.HP)
	assert.Equal(t, 4.0, ak.Interval(1))
	assert.Equal(t, 2.5, ak.Interval(2))
	assert.Equal(t, 2, ak.MaxPhase())

	dm := BossLibrary[component.BossDarkMage]
	assert.Equal(t, 1200.0, dm.HP)
	assert.Equal(t, 3.0, dm.Interval(3))
	assert.Equal(t, 3, dm.MaxPhase())
}

func TestRecipeFor(t *testing.T) {
	r, ok := RecipeFor(component.BallNormal)
	require.True(t, ok)
	assert.Equal(t, 5, r.Count)
	_, ok = RecipeFor(component.BallGhost)
	assert.False(t, ok)
}

func TestLoadOverrides(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, LoadEmbedded()) })

	dir := t.TempDir()
	waves := "- [tank, tank, tank, tank, tank, tank, tank, tank]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "waves.yaml"), []byte(waves), 0o644))

	applied, err := LoadOverrides(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"waves.yaml"}, applied)
	require.Len(t, WavePatterns, 1)
	assert.Equal(t, component.EnemyTank, PatternForWave(5)[7])
}

func TestLoadRejectsBadTables(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, LoadEmbedded()) })
	dir := t.TempDir()

	short := filepath.Join(dir, "short.yaml")
	require.NoError(t, os.WriteFile(short, []byte("- [melee, archer]\n"), 0o644))
	assert.Error(t, LoadWavePatterns(short))

	unknown := filepath.Join(dir, "balls.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("- {type: plasma, damage: 1, speed: 1, color: '#FFFFFF'}\n"), 0o644))
	assert.Error(t, LoadBallDefinitions(unknown))

	assert.Error(t, LoadEnemyDefinitions(filepath.Join(dir, "missing.yaml")))
	assert.Len(t, WavePatterns, 8, "failed loads leave the library untouched")
}
