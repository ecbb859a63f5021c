// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/defs"
)

const (
	progressBarWidth  = 200
	progressBarHeight = 8
)

// WaveIndicator отображает номер секции римскими цифрами, номер волны
// и прогресс до босса. Во время боя с боссом вместо прогресса — его здоровье.
type WaveIndicator struct {
	X, Y             float32
	Color            color.RGBA
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны; x — центр.
func NewWaveIndicator(x, y float32) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.ProgressBarColor,
		OutlineColor:     color.Black,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// BossStatus — то, что индикатор показывает о боссе.
type BossStatus struct {
	Def      defs.BossDefinition
	Fraction float64
}

// Draw отрисовывает индикатор. boss == nil — обычный прогресс секции.
func (i *WaveIndicator) Draw(screen *ebiten.Image, section, wave int, progress float64, boss *BossStatus) {
	// секции считаются с нуля, игроку показываем с единицы
	title := toRoman(section + 1)
	barColor := i.Color
	fill := float32(progress)
	if boss != nil {
		title = fmt.Sprintf("%s  %s", title, boss.Def.Name)
		barColor = boss.Def.Color
		fill = float32(boss.Fraction)
	} else {
		title = fmt.Sprintf("%s  wave %d", title, wave)
	}
	drawTextOutlined(screen, title, i.X, i.Y, config.TextLightColor, i.OutlineColor, i.OutlineThickness)

	x := i.X - progressBarWidth/2
	y := i.Y + 20
	vector.DrawFilledRect(screen, x, y, progressBarWidth, progressBarHeight, color.RGBA{0, 0, 0, 160}, false)
	if fill > 0 {
		if fill > 1 {
			fill = 1
		}
		vector.DrawFilledRect(screen, x, y, progressBarWidth*fill, progressBarHeight, barColor, false)
	}
	vector.StrokeRect(screen, x, y, progressBarWidth, progressBarHeight, 1, color.White, false)

	if boss != nil {
		// риски порогов фаз
		for _, t := range boss.Def.PhaseThresholds {
			tx := x + progressBarWidth*float32(t)
			vector.StrokeLine(screen, tx, y, tx, y+progressBarHeight, 1, color.White, false)
		}
	}
}
