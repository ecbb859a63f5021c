// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-ball-brawler/internal/config"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y float32
}

const (
	xpBarWidth  = 150
	xpBarHeight = 8
	borderWidth = 1
)

var xpBackColor = color.RGBA{10, 20, 40, 220}

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// Draw отрисовывает полосу опыта и номер уровня справа от неё.
// Отложенные выборы улучшений показываются звёздочками.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext, pending int) {
	vector.DrawFilledRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, xpBackColor, false)

	fillWidth := (xpBarWidth - borderWidth*2) * fraction(float64(currentXP), float64(xpToNext))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, config.XPBarColor, false)
	}
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, color.White, false)

	label := fmt.Sprintf("Lv %d", level)
	for j := 0; j < pending; j++ {
		label += "*"
	}
	drawText(screen, label, i.X+xpBarWidth+6, i.Y-3, config.TextLightColor)
}
