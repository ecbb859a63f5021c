// internal/system/ball.go
package system

import (
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/defs"
	"go-ball-brawler/internal/types"
	vec "go-ball-brawler/pkg/utils"
)

// Hit — попадание мяча во врага за один тик.
type Hit struct {
	EnemyID  types.EntityID
	Damage   float64
	BallType component.BallType
}

// BossHit — попадание мяча в босса. Урон считает оркестратор.
type BossHit struct {
	BallType component.BallType
	Damage   float64
	Position vec.Vector2
}

// CreateBall создаёт активный мяч, летящий в направлении dir.
// speedMul и radius приходят из модификаторов забега.
func CreateBall(pos, dir vec.Vector2, t component.BallType, speedMul, radius float64) *component.Ball {
	def := defs.Ball(t)
	speed := config.BallBaseSpeed * def.Speed * speedMul
	return &component.Ball{
		Type:     t,
		Position: pos,
		Velocity: dir.Normalize().Scale(speed),
		Damage:   def.Damage,
		Speed:    speed,
		Radius:   radius,
		Active:   true,
	}
}

// NewHeldBall creates a ball sitting in the player's hand.
func NewHeldBall(playerPos vec.Vector2, t component.BallType, speedMul, radius float64) *component.Ball {
	b := CreateBall(HoldPosition(playerPos), vec.Vec(0, -1), t, speedMul, radius)
	b.Held = true
	return b
}

// HoldPosition is where a held ball sits relative to the player.
func HoldPosition(playerPos vec.Vector2) vec.Vector2 {
	return vec.Vec(playerPos.X, playerPos.Y-config.BallHoldOffsetY)
}

// PaddleRect — зона щита над игроком, от которой мяч отскакивает вверх.
func PaddleRect(playerPos vec.Vector2) vec.Rect {
	return vec.Rect{
		X: playerPos.X - config.PlayerWidth/2 - config.PaddleMarginX,
		Y: playerPos.Y - config.PlayerHeight/2 - config.PaddleOffsetY,
		W: config.PlayerWidth + 2*config.PaddleMarginX,
		H: config.PaddleHeight,
	}
}

// UpdateBalls двигает мячи и разрешает столкновения со стенами, щитом и дном.
// Неактивные мячи отбрасываются в начале тика, поэтому пойманный мяч
// живёт в списке ровно один лишний тик.
func UpdateBalls(balls []*component.Ball, playerPos vec.Vector2, deltaTime float64, sink component.ParticleSink) []*component.Ball {
	kept := balls[:0]
	for _, b := range balls {
		if !b.Active {
			continue
		}
		if b.Held {
			kept = append(kept, b)
			continue
		}
		if stepBall(b, playerPos, deltaTime, sink) {
			kept = append(kept, b)
		}
	}
	return kept
}

// stepBall returns false when the ball is lost.
func stepBall(b *component.Ball, playerPos vec.Vector2, deltaTime float64, sink component.ParticleSink) bool {
	b.Position = b.Position.Add(b.Velocity.Scale(deltaTime))
	sink.Add(TrailParticle(b.Position, defs.Ball(b.Type).RGBA))

	r := b.Radius
	if b.Position.X-r <= 0 {
		b.Position.X = r
		b.Velocity.X = vec.Abs(b.Velocity.X)
	}
	if b.Position.X+r >= config.ScreenWidth {
		b.Position.X = config.ScreenWidth - r
		b.Velocity.X = -vec.Abs(b.Velocity.X)
	}
	if b.Position.Y-r <= config.HUDHeight {
		b.Position.Y = config.HUDHeight + r
		b.Velocity.Y = vec.Abs(b.Velocity.Y)
	}

	if b.Velocity.Y > 0 {
		paddle := PaddleRect(playerPos)
		if vec.CircleRect(b.Position, r, paddle) {
			offset := (b.Position.X - playerPos.X) / (config.PlayerWidth / 2)
			b.Velocity.X = offset * b.Speed * config.PaddleDeflection
			b.Velocity.Y = -vec.Abs(b.Velocity.Y)
			b.Position.Y = paddle.Y - r
			return true
		}
	}

	if b.Position.Y+r >= config.BallBottomY {
		if b.Type != component.BallNormal {
			return false
		}
		b.Velocity = vec.Vector2{}
		b.Active = false
		b.Returned = true
	}
	return true
}

// ThrowBall releases a held ball. A zero direction leaves the ball motionless.
func ThrowBall(b *component.Ball, dir vec.Vector2) {
	b.Held = false
	b.Velocity = dir.Normalize().Scale(b.Speed)
	b.Active = true
}

// HeldBall returns the ball in the player's hand, or nil.
func HeldBall(balls []*component.Ball) *component.Ball {
	for _, b := range balls {
		if b.Held {
			return b
		}
	}
	return nil
}

// HasActiveBalls reports whether any thrown ball is still in flight.
func HasActiveBalls(balls []*component.Ball) bool {
	for _, b := range balls {
		if b.Active && !b.Held {
			return true
		}
	}
	return false
}

// CheckBallEnemyCollisions находит попадания мячей во врагов.
// Мяч может задеть нескольких врагов за тик, если они перекрываются до
// отталкивания. Бомба после первого попадания гаснет и дальше не проверяется.
func CheckBallEnemyCollisions(balls []*component.Ball, enemies []*component.Enemy, damageMul float64, rng Random, sink component.ParticleSink) []Hit {
	var hits []Hit
	for _, b := range balls {
		if !b.Active || b.Held {
			continue
		}
		for _, e := range enemies {
			if !e.Alive() {
				continue
			}
			er := e.Radius()
			if !vec.CircleCircle(b.Position, b.Radius, e.Position, er) {
				continue
			}
			hits = append(hits, Hit{EnemyID: e.ID, Damage: b.Damage * damageMul, BallType: b.Type})
			sink.Add(ImpactParticles(rng, b.Position, defs.Ball(b.Type).RGBA, 10)...)

			if !b.Type.Phases() {
				normal := b.Position.Sub(e.Position).Normalize()
				b.Velocity = b.Velocity.Reflect(normal)
				b.Position = b.Position.Add(normal.Scale(er + b.Radius + config.BallPushEpsilon))
			}
			if b.Type == component.BallBomb {
				b.Active = false
				break
			}
		}
	}
	return hits
}

// CheckBallBossCollisions tests every live ball against the boss hit box.
func CheckBallBossCollisions(balls []*component.Ball, boss *component.Boss, rng Random, sink component.ParticleSink) []BossHit {
	if boss == nil || boss.Defeated {
		return nil
	}
	box := boss.Bounds(config.BossWidth, config.BossHeight)
	var hits []BossHit
	for _, b := range balls {
		if !b.Active || b.Held {
			continue
		}
		if !vec.CircleRect(b.Position, b.Radius, box) {
			continue
		}
		hits = append(hits, BossHit{BallType: b.Type, Damage: b.Damage, Position: b.Position})
		sink.Add(ImpactParticles(rng, b.Position, defs.Ball(b.Type).RGBA, 10)...)

		normal := b.Position.Sub(boss.Position).Normalize()
		if !normal.IsZero() {
			b.Velocity = b.Velocity.Reflect(normal)
			b.Position = b.Position.Add(normal.Scale(b.Radius + config.BallPushEpsilon))
		}
	}
	return hits
}

// CheckBallOrbCollisions lets balls chip the dark mage's homing orbs.
// Returns the orbs that survived.
func CheckBallOrbCollisions(balls []*component.Ball, orbs []component.HomingOrb) []component.HomingOrb {
	alive := orbs[:0]
	for _, orb := range orbs {
		for _, b := range balls {
			if !b.Active || b.Held {
				continue
			}
			if vec.CircleCircle(b.Position, b.Radius, orb.Position, defs.MageOrbRadius) {
				orb.HP -= b.Damage
			}
		}
		if orb.HP > 0 {
			alive = append(alive, orb)
		}
	}
	return alive
}

// PredictBallTrajectory пошагово симулирует полёт для линии прицела.
// Возвращает стартовую точку и точки отскоков.
func PredictBallTrajectory(start, dir vec.Vector2, speed float64, bounces int) []vec.Vector2 {
	points := []vec.Vector2{start}
	pos := start
	vel := dir.Normalize().Scale(speed)

	for i := 0; bounces > 0 && i < config.TrajectoryMaxIterations; i++ {
		pos = pos.Add(vel.Scale(config.TrajectoryStep))

		if pos.X <= 0 || pos.X >= config.ScreenWidth {
			vel.X = -vel.X
			if pos.X <= 0 {
				pos.X = 0
			} else {
				pos.X = config.ScreenWidth
			}
			points = append(points, pos)
			bounces--
		}
		if pos.Y <= config.HUDHeight {
			vel.Y = -vel.Y
			pos.Y = config.HUDHeight
			points = append(points, pos)
			bounces--
		}
		if pos.Y >= config.ScreenHeight {
			break
		}
	}
	return points
}
