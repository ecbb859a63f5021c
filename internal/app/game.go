// internal/app/game.go
package app

import (
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/defs"
	"go-ball-brawler/internal/entity"
	"go-ball-brawler/internal/event"
	"go-ball-brawler/internal/input"
	"go-ball-brawler/internal/logging"
	"go-ball-brawler/internal/system"
	"go-ball-brawler/internal/types"
	"go-ball-brawler/internal/utils"
	vec "go-ball-brawler/pkg/utils"
)

// Game — основная структура игры. Владеет миром, системами и диспетчером,
// и сам служит контекстом, через который системы влияют на мир.
type Game struct {
	World      *entity.World
	Modifiers  component.Modifiers
	Events     *event.Dispatcher
	Stats      *event.StatsTracker
	Rng        *utils.PRNGService
	Background *system.Background
	RunID      string

	combat   *system.CombatSystem
	bosses   *system.BossSystem
	director *system.ProgressionDirector
	states   *system.StateSystem
	visuals  *system.VisualEffectSystem

	baseLog zerolog.Logger
	log     zerolog.Logger

	flash float64
	// ballDelay — отсчёт до появления следующего мяча в руке после броска.
	ballDelay   float64
	ballPending bool
	pointer     vec.Vector2
}

// NewGame создаёт новую игру. seed 0 берёт сид из текущего времени.
func NewGame(seed int64, log zerolog.Logger) *Game {
	g := &Game{
		Rng:     utils.NewPRNGService(seed),
		baseLog: log,
	}
	g.Background = system.NewBackground(g.Rng)
	g.reset()
	return g
}

// reset builds a fresh run: world, modifiers, systems and listeners.
func (g *Game) reset() {
	g.RunID = uuid.NewString()
	g.log = logging.WithRun(g.baseLog, g.RunID)

	g.World = entity.NewWorld()
	g.World.Player = system.CreatePlayer()
	g.Modifiers = component.NewModifiers()

	g.Events = event.NewDispatcher()
	g.Stats = event.NewStatsTracker()
	g.Stats.Attach(g.Events)
	g.Events.SubscribeAll(event.NewLogListener(logging.Component(g.log, "events")))

	g.combat = system.NewCombatSystem(g.Rng, &g.World.Particles)
	g.bosses = system.NewBossSystem(g.World, g, g.Rng, g.Events)
	g.director = system.NewProgressionDirector(g.World, g, g.bosses, g.Events)
	g.states = system.NewStateSystem(g.World, g.Rng, g.Events)
	g.visuals = system.NewVisualEffectSystem(g.World)

	g.flash = 0
	g.ballDelay = 0
	g.ballPending = false
	g.Background.BossFight = false

	g.log.Info().Int64("seed", g.Rng.Seed()).Msg("session started")
	g.director.StartFirstWave()
}

// Restart начинает новый забег с тем же генератором.
func (g *Game) Restart() {
	g.reset()
}

// Update продвигает симуляцию на один кадр.
func (g *Game) Update(deltaTime float64, src input.Source) {
	deltaTime = math.Max(0, math.Min(deltaTime, config.MaxDeltaTime))
	in := src.State()
	g.pointer = in.Pointer
	g.World.GameTime += deltaTime

	g.Background.BossFight = g.World.LiveBoss() != nil
	g.Background.Update(deltaTime)

	switch g.World.State {
	case component.StatePlaying:
		g.updatePlaying(deltaTime, in, src)
	case component.StatePaused:
		if in.Pause {
			g.states.TogglePause()
		}
	case component.StateLevelUp:
		g.updateLevelUp(in, src)
	case component.StateGameOver:
		if in.Primary {
			src.ConsumePrimary()
			g.Restart()
		}
	}

	g.visuals.Update(deltaTime)
	g.flash = math.Max(0, g.flash-deltaTime*config.FlashDecayRate)
}

func (g *Game) updatePlaying(deltaTime float64, in input.State, src input.Source) {
	p := g.World.Player
	g.World.Stats.TimeSurvived += deltaTime

	system.UpdatePlayer(p, system.Intent{Up: in.Up, Down: in.Down, Left: in.Left, Right: in.Right}, deltaTime)

	g.World.Balls = system.UpdateBalls(g.World.Balls, p.Position, deltaTime, &g.World.Particles)
	g.creditCaughtBalls()
	if in.Craft {
		g.craft()
	}
	g.handleThrowing(deltaTime, in, src)

	g.World.Enemies = system.UpdateEnemies(g.World.Enemies, p.Position, deltaTime, g.SpawnProjectile)
	g.pollEnemyTimers()

	g.World.Projectiles = system.UpdateProjectiles(g.World.Projectiles, deltaTime)
	g.resolveProjectileHits()

	g.resolveBallHits()
	g.resolveBossHits()
	g.resolveEnemyContact()

	g.World.PowerUps = system.UpdatePowerUps(g.World.PowerUps, deltaTime)
	g.World.PowerUps = system.CollectPowerUps(g.World.PowerUps, p, g, func(t component.PowerUpType) {
		g.Events.Emit(event.PowerUpCollected, event.PowerUpData{Type: t})
	})
	g.updateXPOrbs(deltaTime)

	if g.bosses.Update(deltaTime) {
		g.director.OnBossDefeated()
	}
	g.director.Update(deltaTime)

	g.sweepDeaths()
	g.checkGameOver()

	if in.Pause && g.World.State == component.StatePlaying {
		g.states.TogglePause()
	}
}

// creditCaughtBalls returns balls caught at the bottom edge to the inventory.
// UpdateBalls drops them on the next tick since they are no longer active.
func (g *Game) creditCaughtBalls() {
	for _, b := range g.World.Balls {
		if !b.Returned {
			continue
		}
		b.Returned = false
		g.World.Player.Inventory.Add(component.BallNormal, 1)
		g.Events.Emit(event.BallCaught, event.BallData{Type: b.Type})
	}
}

func (g *Game) handleThrowing(deltaTime float64, in input.State, src input.Source) {
	p := g.World.Player
	if g.ballPending {
		g.ballDelay -= deltaTime
		if g.ballDelay <= 0 {
			g.ballPending = false
			g.drawBall(true)
		}
	}

	held := system.HeldBall(g.World.Balls)
	if held == nil {
		if !g.ballPending {
			g.drawBall(true)
		}
		return
	}
	held.Position = system.HoldPosition(p.Position)

	if !in.Primary {
		return
	}
	src.ConsumePrimary()
	dir := in.Pointer.Sub(held.Position)
	if dir.IsZero() {
		return
	}
	system.ThrowBall(held, dir)
	p.Inventory.Remove(held.Type)
	g.World.Stats.BallsThrown++
	g.Events.Emit(event.BallThrown, event.BallData{Type: held.Type})

	system.SelectNextAvailable(p)
	if p.Inventory.Count(p.SelectedBall) > 0 {
		g.ballPending = true
		g.ballDelay = config.BallRespawnDelay
	}
}

// drawBall puts a ball in the player's hand if none is held and one is in stock.
// autoSelect picks the first type in stock instead of the current selection.
func (g *Game) drawBall(autoSelect bool) {
	p := g.World.Player
	if system.HeldBall(g.World.Balls) != nil {
		return
	}
	if autoSelect || p.Inventory.Count(p.SelectedBall) == 0 {
		system.SelectNextAvailable(p)
	}
	if p.Inventory.Count(p.SelectedBall) == 0 {
		return
	}
	b := system.NewHeldBall(p.Position, p.SelectedBall, g.Modifiers.BallSpeedMultiplier(), config.BallRadius*g.Modifiers.BallSizeMultiplier())
	b.ID = g.World.NewEntity()
	g.World.Balls = append(g.World.Balls, b)
}

// craft merges balls via the first available recipe and swaps the held ball
// for one of the crafted type.
func (g *Game) craft() {
	recipe, ok := system.UpgradeFirstAvailable(g.World.Player)
	if !ok {
		return
	}
	g.log.Debug().Str("from", recipe.Input.String()).Str("to", recipe.Output.String()).Msg("balls crafted")
	kept := g.World.Balls[:0]
	for _, b := range g.World.Balls {
		if !b.Held {
			kept = append(kept, b)
		}
	}
	g.World.Balls = kept
	g.ballPending = false
	g.drawBall(false)
}

// pollEnemyTimers runs the spawner and tank abilities whose timers have elapsed.
func (g *Game) pollEnemyTimers() {
	p := g.World.Player
	n := len(g.World.Enemies)
	for i := 0; i < n; i++ {
		e := g.World.Enemies[i]
		if system.ShouldSpawnerSpawn(e) {
			g.SpawnEnemy(component.EnemyMelee, e.Column, e.Position.Y+e.Size)
		}
		if system.ShouldTankSlam(e) {
			def := defs.Enemy(component.EnemyTank)
			g.World.Particles.Add(system.ImpactParticles(g.Rng, e.Position, def.RGBA, 16)...)
			if vec.Distance(e.Position, p.Position) <= def.SlamRadius {
				g.DamagePlayer(def.SlamDamage)
			}
		}
	}
}

func (g *Game) resolveProjectileHits() {
	p := g.World.Player
	kept := g.World.Projectiles[:0]
	for _, pr := range g.World.Projectiles {
		if system.ProjectileTouchesPlayer(pr, p.Position) {
			g.DamagePlayer(pr.Damage)
			continue
		}
		kept = append(kept, pr)
	}
	g.World.Projectiles = kept
}

func (g *Game) damageMultiplier() float64 {
	return g.World.Player.DamageMultiplier * g.Modifiers.BallDamageMultiplier()
}

func (g *Game) resolveBallHits() {
	p := g.World.Player
	hits := system.CheckBallEnemyCollisions(g.World.Balls, g.World.Enemies, g.damageMultiplier(), g.Rng, &g.World.Particles)
	for _, h := range hits {
		e := g.World.FindEnemy(h.EnemyID)
		if e == nil {
			continue
		}
		dmg, _ := g.combat.RollDamage(h.Damage, g.Modifiers.BaseDamageBonus(), p.CritChance)
		system.DamageEnemy(e, dmg)
		if g.Modifiers.LifeSteal() {
			system.HealPlayer(p, dmg*config.LifeStealPercent)
		}
		g.Flash(g.combat.ApplyBallEffect(h.BallType, e, g.World.Enemies, h.Damage))
	}
}

func (g *Game) resolveBossHits() {
	boss := g.World.LiveBoss()
	if boss == nil {
		return
	}
	if boss.Mage != nil {
		boss.Mage.Orbs = system.CheckBallOrbCollisions(g.World.Balls, boss.Mage.Orbs)
	}
	p := g.World.Player
	for _, h := range system.CheckBallBossCollisions(g.World.Balls, boss, g.Rng, &g.World.Particles) {
		dmg, _ := g.combat.RollDamage(h.Damage, g.Modifiers.BaseDamageBonus(), p.CritChance)
		system.DamageBoss(boss, dmg*g.damageMultiplier())
		// вампиризм считается от урона до множителя
		if g.Modifiers.LifeSteal() {
			system.HealPlayer(p, dmg*config.LifeStealPercent)
		}
	}
}

// resolveEnemyContact: враг, добежавший до игрока, бьёт и исчезает без награды.
func (g *Game) resolveEnemyContact() {
	p := g.World.Player
	for _, e := range g.World.Enemies {
		if !e.Alive() || !system.EnemyTouchesPlayer(e, p.Position) {
			continue
		}
		g.DamagePlayer(e.Damage)
		g.World.Particles.Add(system.ImpactParticles(g.Rng, e.Position, defs.Enemy(e.Type).RGBA, 12)...)
		e.HP = 0
		e.Handled = true
	}
}

func (g *Game) updateXPOrbs(deltaTime float64) {
	p := g.World.Player
	radius := system.MagnetRadius(p, g.Modifiers.XPMagnetMultiplier())
	gained := 0
	g.World.XPOrbs = system.UpdateXPOrbs(g.World.XPOrbs, p.Position, radius, deltaTime, func(o *component.XPOrb) {
		g.World.Particles.Add(system.SparkleParticles(g.Rng, o.Position, 5)...)
		gained += system.AddXP(p, o.Value)
	})
	if gained > 0 {
		g.World.Particles.Add(system.SparkleParticles(g.Rng, p.Position, 30)...)
		g.Flash(0.4)
		g.Events.Emit(event.LevelUp, event.LevelUpData{Level: p.Stats.Level})
		g.states.QueueLevelUps(gained)
	}
}

// sweepDeaths обрабатывает каждого погибшего врага ровно один раз.
func (g *Game) sweepDeaths() {
	n := len(g.World.Enemies)
	for i := 0; i < n; i++ {
		e := g.World.Enemies[i]
		if e.Alive() || e.Handled {
			continue
		}
		e.Handled = true
		g.onEnemyKilled(e)
	}
}

func (g *Game) onEnemyKilled(e *component.Enemy) {
	g.World.Stats.EnemiesKilled++
	g.World.Progress.EnemiesDefeated++
	g.World.Particles.Add(system.ExplosionParticles(g.Rng, e.Position, defs.Enemy(e.Type).RGBA, 20)...)

	value := system.KillOrbValue(e.XPValue, g.Modifiers.XPMultiplier())
	g.SpawnXPOrb(e.Position, value)

	if g.Rng.Float64() < system.DropChance(e.Type, g.Modifiers.DropRateBonus()) {
		g.SpawnPowerUp(e.Position, e.Type == component.EnemyElite)
	}

	if e.Type == component.EnemySpawner {
		side := -1
		if g.Rng.Float64() > 0.5 {
			side = 1
		}
		if col := e.Column + side; col >= 0 && col < config.Columns {
			g.SpawnEnemy(component.EnemyMelee, col, e.Position.Y)
		}
	}
	g.Events.Emit(event.EnemyKilled, event.EnemyKilledData{ID: e.ID, Type: e.Type, XP: value})
}

func (g *Game) checkGameOver() {
	p := g.World.Player
	if p.Stats.HP > 0 {
		return
	}
	if g.Modifiers.ConsumeSecondWind() {
		p.Stats.HP = p.Stats.MaxHP * config.SecondWindHPPercent
		g.Flash(0.6)
		g.log.Info().Float64("hp", p.Stats.HP).Msg("second wind")
		g.Events.Emit(event.SecondWind, nil)
		return
	}
	g.states.GameOver()
}

func (g *Game) updateLevelUp(in input.State, src input.Source) {
	options := g.states.Options()
	index := -1
	switch {
	case in.Choice >= 1 && in.Choice <= len(options):
		index = in.Choice - 1
	case in.Primary:
		src.ConsumePrimary()
		index = system.UpgradeCardAt(in.Pointer, len(options))
	}
	if index < 0 {
		return
	}
	if g.states.Choose(index, system.UpgradeTarget{Player: g.World.Player, Modifiers: &g.Modifiers}) {
		g.log.Debug().Int("pending", g.states.Pending()).Msg("upgrade applied")
	}
}

// --- interfaces.BossContext, interfaces.EnemySpawner, system.PowerUpEffects ---

func (g *Game) PlayerPosition() vec.Vector2 {
	return g.World.Player.Position
}

func (g *Game) DamagePlayer(amount float64) {
	system.DamagePlayer(g.World.Player, amount)
}

func (g *Game) SpawnProjectile(pos, vel vec.Vector2, damage float64, owner types.EntityID) {
	g.World.Projectiles = append(g.World.Projectiles, &component.Projectile{
		ID:       g.World.NewEntity(),
		Position: pos,
		Velocity: vel,
		Damage:   damage,
		Owner:    owner,
	})
}

func (g *Game) SpawnEnemy(t component.EnemyType, column int, y float64) {
	g.World.Enemies = append(g.World.Enemies, system.CreateEnemy(g.World.NewEntity(), t, column, y))
}

// Flash raises the screen flash; a weaker flash never dims a stronger one.
func (g *Game) Flash(alpha float64) {
	g.flash = math.Max(g.flash, alpha)
}

func (g *Game) SpawnXPOrb(pos vec.Vector2, value int) {
	g.World.XPOrbs = append(g.World.XPOrbs, system.CreateXPOrb(g.World.NewEntity(), pos, value))
}

func (g *Game) SpawnPowerUp(pos vec.Vector2, elite bool) {
	t := system.RollPowerUp(g.Rng, elite)
	g.World.PowerUps = append(g.World.PowerUps, system.CreatePowerUp(g.World.NewEntity(), pos, t))
}

func (g *Game) BombAll(damage float64) {
	system.DamageAll(g.World.Enemies, damage)
	for _, e := range g.World.Enemies {
		g.World.Particles.Add(system.ExplosionParticles(g.Rng, e.Position, config.SparkleColor, 8)...)
	}
	g.Flash(0.5)
}

func (g *Game) FreezeAll(duration float64) {
	system.FreezeAll(g.World.Enemies, duration)
}

// --- queries ---

// State is the current game state.
func (g *Game) State() component.GameState {
	return g.World.State
}

// FlashAlpha — текущая яркость вспышки экрана, 0..1.
func (g *Game) FlashAlpha() float64 {
	return g.flash
}

// WaveIndex is the number of waves spawned in this run.
func (g *Game) WaveIndex() int {
	return g.director.WaveIndex()
}

// UpgradeOptions are the cards on offer while leveling up.
func (g *Game) UpgradeOptions() []defs.UpgradeDefinition {
	return g.states.Options()
}

// TogglePause pauses or resumes play from outside the input loop.
func (g *Game) TogglePause() {
	g.states.TogglePause()
}
