// internal/system/background.go
package system

import "go-ball-brawler/internal/config"

const (
	starCount      = 100
	dustCount      = 50
	gridPeriod     = 40.0
	gridScrollRate = 30.0
)

// Mote — звезда или пылинка фона.
type Mote struct {
	X, Y    float64
	Size    float64
	Opacity float64
	Speed   float64
}

// Background — прокручиваемый фон. Обновляется в любом состоянии игры.
type Background struct {
	Stars      []Mote
	Dust       []Mote
	GridOffset float64
	BossFight  bool
	rng        Random
}

func NewBackground(rng Random) *Background {
	bg := &Background{rng: rng}
	for i := 0; i < starCount; i++ {
		bg.Stars = append(bg.Stars, Mote{
			X:       rng.Range(0, config.ScreenWidth),
			Y:       rng.Range(0, config.ScreenHeight*2),
			Size:    rng.Range(1, 3),
			Opacity: rng.Range(0.3, 0.8),
			Speed:   rng.Range(10, 25),
		})
	}
	for i := 0; i < dustCount; i++ {
		bg.Dust = append(bg.Dust, Mote{
			X:       rng.Range(0, config.ScreenWidth),
			Y:       rng.Range(0, config.ScreenHeight*2),
			Size:    rng.Range(1, 4),
			Opacity: rng.Range(0.1, 0.4),
			Speed:   rng.Range(15, 40),
		})
	}
	return bg
}

func (b *Background) Update(deltaTime float64) {
	b.scroll(b.Stars, deltaTime)
	b.scroll(b.Dust, deltaTime)
	b.GridOffset += gridScrollRate * deltaTime
	if b.GridOffset >= gridPeriod {
		b.GridOffset = 0
	}
}

func (b *Background) scroll(motes []Mote, deltaTime float64) {
	for i := range motes {
		m := &motes[i]
		m.Y += m.Speed * deltaTime
		if m.Y > config.ScreenHeight {
			m.Y = -m.Size
			m.X = b.rng.Range(0, config.ScreenWidth)
		}
	}
}
