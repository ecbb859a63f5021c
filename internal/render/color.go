// internal/render/color.go
package render

import (
	"image/color"

	"golang.org/x/image/colornames"

	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/utils"
)

// Оттенки статусов поверх цвета врага.
var statusTints = map[component.StatusType]color.RGBA{
	component.StatusBurn:   colornames.Orangered,
	component.StatusFreeze: colornames.Lightskyblue,
	component.StatusSlow:   colornames.Lightskyblue,
	component.StatusPoison: colornames.Limegreen,
}

// powerUpColors — цвет капсулы бонуса по типу.
var powerUpColors = [component.PowerUpTypeCount]color.RGBA{
	component.PowerUpHealth:        colornames.Crimson,
	component.PowerUpSpeed:         colornames.Deepskyblue,
	component.PowerUpDamage:        colornames.Orange,
	component.PowerUpShield:        colornames.Cyan,
	component.PowerUpXP:            colornames.Lime,
	component.PowerUpMagnet:        colornames.Violet,
	component.PowerUpFreeze:        colornames.Lightblue,
	component.PowerUpBomb:          colornames.Darkorange,
	component.PowerUpInvincibility: colornames.Gold,
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha scales the alpha of c by a in 0..1. The result stays premultiplied.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a <= 0 {
		return color.RGBA{}
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// LerpColor смешивает два цвета.
func LerpColor(from, to color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(utils.Lerp(float64(from.R), float64(to.R), t)),
		G: uint8(utils.Lerp(float64(from.G), float64(to.G), t)),
		B: uint8(utils.Lerp(float64(from.B), float64(to.B), t)),
		A: uint8(utils.Lerp(float64(from.A), float64(to.A), t)),
	}
}

// enemyColor tints the base color by the first status effect on the enemy.
func enemyColor(base color.RGBA, effects []component.StatusEffect) color.RGBA {
	for _, eff := range effects {
		if tint, ok := statusTints[eff.Type]; ok {
			return LerpColor(base, tint, 0.5)
		}
	}
	return base
}

func powerUpColor(t component.PowerUpType) color.RGBA {
	if t < 0 || t >= component.PowerUpTypeCount {
		return colornames.White
	}
	return powerUpColors[t]
}
