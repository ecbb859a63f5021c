// internal/component/visual.go
package component

import (
	"image/color"

	"go-ball-brawler/pkg/utils"
)

// Particle — чисто визуальная частица.
type Particle struct {
	Position      utils.Vector2
	Velocity      utils.Vector2
	Color         color.RGBA
	Size          float64
	Lifetime      float64
	Alpha         float64
	Rotation      float64
	RotationSpeed float64
}

// ParticleSink принимает новые частицы от боевой логики.
type ParticleSink interface {
	Add(particles ...Particle)
}

// ParticleBuffer is the append-only particle list drained by the renderer.
type ParticleBuffer struct {
	Items []Particle
}

func (b *ParticleBuffer) Add(particles ...Particle) {
	b.Items = append(b.Items, particles...)
}

func (b *ParticleBuffer) Len() int {
	return len(b.Items)
}
