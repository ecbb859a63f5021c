// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
)

const (
	healthBarWidth  = 150
	healthBarHeight = 12
)

var healthBackColor = color.RGBA{40, 10, 10, 220}

// PlayerHealthIndicator отображает здоровье и щит игрока.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует полосу здоровья; щит поверх неё голубой полосой.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, stats component.Stats) {
	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, healthBackColor, false)

	fill := fraction(stats.HP, stats.MaxHP)
	if fill > 0 {
		vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth*fill, healthBarHeight, config.HealthBarColor, false)
	}
	if stats.HasShield() {
		shield := fraction(stats.ShieldHP, stats.MaxHP)
		vector.DrawFilledRect(screen, i.X, i.Y+healthBarHeight-3, healthBarWidth*shield, 3, config.ShieldColor, false)
	}
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, 1, color.White, false)

	label := fmt.Sprintf("HP %.0f/%.0f", stats.HP, stats.MaxHP)
	drawText(screen, label, i.X+healthBarWidth+6, i.Y-1, config.TextLightColor)
}

// fraction returns v/max clamped to 0..1.
func fraction(v, max float64) float32 {
	if max <= 0 || v <= 0 {
		return 0
	}
	if v >= max {
		return 1
	}
	return float32(v / max)
}
