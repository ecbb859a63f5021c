// internal/system/wave.go
package system

import (
	"math"

	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/defs"
	"go-ball-brawler/internal/entity"
	"go-ball-brawler/internal/event"
	"go-ball-brawler/internal/interfaces"
)

// ProgressionDirector двигает прогресс секции, выпускает волны и вызывает босса.
type ProgressionDirector struct {
	world   *entity.World
	spawner interfaces.EnemySpawner
	bosses  *BossSystem
	events  *event.Dispatcher

	waveIndex         int
	lastSpawnProgress float64
	resetTimer        float64
	resetPending      bool
}

func NewProgressionDirector(world *entity.World, spawner interfaces.EnemySpawner, bosses *BossSystem, events *event.Dispatcher) *ProgressionDirector {
	return &ProgressionDirector{
		world:   world,
		spawner: spawner,
		bosses:  bosses,
		events:  events,
	}
}

// WaveIndex is the number of waves spawned so far.
func (d *ProgressionDirector) WaveIndex() int {
	return d.waveIndex
}

// StartFirstWave spawns the opening wave without waiting for progress.
func (d *ProgressionDirector) StartFirstWave() {
	d.spawnWave()
}

// OnBossDefeated starts the countdown after which the next section begins.
func (d *ProgressionDirector) OnBossDefeated() {
	d.resetPending = true
	d.resetTimer = config.BossResetDelay
}

func (d *ProgressionDirector) Update(deltaTime float64) {
	progress := &d.world.Progress

	if d.resetPending {
		d.resetTimer -= deltaTime
		if d.resetTimer <= 0 {
			d.nextSection()
		}
		return
	}
	// пока босс на поле, прогресс стоит
	if d.world.Boss != nil {
		return
	}

	progress.Progress = math.Min(config.ProgressMax, progress.Progress+config.ProgressRate*deltaTime)

	if progress.Progress < config.ProgressMax {
		if math.Floor(progress.Progress/config.WaveIntervalPercent) > math.Floor(d.lastSpawnProgress/config.WaveIntervalPercent) {
			d.lastSpawnProgress = progress.Progress
			d.spawnWave()
		}
		return
	}

	if !progress.BossActive {
		progress.BossActive = true
		d.bosses.SpawnRandom()
	}
}

func (d *ProgressionDirector) spawnWave() {
	pattern := defs.PatternForWave(d.waveIndex)
	for column, t := range pattern {
		d.spawner.SpawnEnemy(t, column, config.HUDHeight+config.EnemySpawnOffsetY)
	}
	d.events.Emit(event.WaveSpawned, event.WaveData{Index: d.waveIndex, Section: d.world.Progress.Section})
	d.waveIndex++
}

func (d *ProgressionDirector) nextSection() {
	d.resetPending = false
	d.lastSpawnProgress = 0
	d.world.Boss = nil
	d.bosses.Clear()
	d.world.Progress.Progress = 0
	d.world.Progress.BossActive = false
	d.world.Progress.Section++
	d.events.Emit(event.SectionCleared, event.WaveData{Index: d.waveIndex, Section: d.world.Progress.Section})
}
