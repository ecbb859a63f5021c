// internal/ui/menu_button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	vec "go-ball-brawler/pkg/utils"
)

// MenuButton представляет собой простую кнопку для использования в меню.
type MenuButton struct {
	Rect    vec.Rect
	Text    string
	bgColor color.RGBA
	fgColor color.RGBA
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(rect vec.Rect, text string) *MenuButton {
	return &MenuButton{
		Rect:    rect,
		Text:    text,
		bgColor: color.RGBA{40, 40, 60, 255},
		fgColor: color.RGBA{240, 240, 240, 255},
	}
}

// Draw отрисовывает кнопку; под курсором она подсвечивается.
func (b *MenuButton) Draw(screen *ebiten.Image, mouse vec.Vector2) {
	x, y, w, h := float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.W), float32(b.Rect.H)
	bg := b.bgColor
	if b.IsClicked(mouse) {
		bg = color.RGBA{70, 70, 100, 255}
	}
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{200, 200, 200, 255}, false)

	textHeight := float32(Face.Metrics().Height.Ceil())
	drawTextCentered(screen, b.Text, x+w/2, y+(h-textHeight)/2, b.fgColor)
}

// IsClicked проверяет, находится ли точка над кнопкой.
func (b *MenuButton) IsClicked(mouse vec.Vector2) bool {
	return b.Rect.Contains(mouse)
}
