// internal/system/visual_effect.go
package system

import (
	"image/color"
	"math"

	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/entity"
	"go-ball-brawler/internal/utils"
	vec "go-ball-brawler/pkg/utils"
)

// VisualEffectSystem управляет частицами. Работает в любом состоянии игры.
type VisualEffectSystem struct {
	world *entity.World
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World) *VisualEffectSystem {
	return &VisualEffectSystem{world: world}
}

// Update обновляет все активные частицы.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	s.world.Particles.Items = UpdateParticles(s.world.Particles.Items, deltaTime)
}

// UpdateParticles moves, ages and fades particles, dropping dead ones.
func UpdateParticles(particles []component.Particle, deltaTime float64) []component.Particle {
	alive := particles[:0]
	for _, p := range particles {
		p.Position = p.Position.Add(p.Velocity.Scale(deltaTime))
		p.Velocity.Y += config.ParticleGravity * deltaTime
		p.Rotation = utils.NormalizeAngle(p.Rotation + p.RotationSpeed*deltaTime)
		p.Lifetime -= deltaTime
		p.Alpha = math.Min(1, math.Max(0, p.Lifetime/config.ParticleLifetime))
		if p.Lifetime > 0 {
			alive = append(alive, p)
		}
	}
	return alive
}

// ImpactParticles — кольцо искр при попадании.
func ImpactParticles(rng Random, pos vec.Vector2, c color.RGBA, count int) []component.Particle {
	out := make([]component.Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := 2*math.Pi*float64(i)/float64(count) + rng.Range(-0.2, 0.2)
		out = append(out, component.Particle{
			Position:      pos,
			Velocity:      vec.FromAngle(angle, rng.Range(150, 250)),
			Color:         c,
			Size:          rng.Range(2, 6),
			Lifetime:      config.ParticleLifetime,
			Alpha:         1,
			Rotation:      rng.Range(0, 2*math.Pi),
			RotationSpeed: rng.Range(-5, 5),
		})
	}
	return out
}

// ExplosionParticles — разлёт осколков при смерти или взрыве.
func ExplosionParticles(rng Random, pos vec.Vector2, c color.RGBA, count int) []component.Particle {
	out := make([]component.Particle, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, component.Particle{
			Position:      pos,
			Velocity:      vec.FromAngle(rng.Range(0, 2*math.Pi), rng.Range(200, 400)),
			Color:         c,
			Size:          rng.Range(4, 10),
			Lifetime:      rng.Range(0.8, 1.5),
			Alpha:         1,
			Rotation:      rng.Range(0, 2*math.Pi),
			RotationSpeed: rng.Range(-8, 8),
		})
	}
	return out
}

// TrailParticle is the short-lived dot a moving ball leaves behind.
func TrailParticle(pos vec.Vector2, c color.RGBA) component.Particle {
	return component.Particle{
		Position: pos,
		Color:    c,
		Size:     4,
		Lifetime: 0.3,
		Alpha:    0.8,
	}
}

// SparkleParticles — золотые искры подбора опыта и повышения уровня.
func SparkleParticles(rng Random, pos vec.Vector2, count int) []component.Particle {
	out := make([]component.Particle, 0, count)
	for i := 0; i < count; i++ {
		v := vec.FromAngle(rng.Range(0, 2*math.Pi), rng.Range(50, 150))
		v.Y -= 50
		out = append(out, component.Particle{
			Position:      pos,
			Velocity:      v,
			Color:         config.SparkleColor,
			Size:          rng.Range(2, 5),
			Lifetime:      rng.Range(0.5, 1.0),
			Alpha:         1,
			RotationSpeed: rng.Range(-10, 10),
		})
	}
	return out
}
