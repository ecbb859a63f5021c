// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"go-ball-brawler/internal/config"
)

// Face — шрифт всего интерфейса.
var Face font.Face = basicfont.Face7x13

// printer форматирует счётчики с разделителями разрядов.
var printer = message.NewPrinter(language.English)

// Count formats n with thousands separators.
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

// drawText рисует строку так, что (x, y) — её левый верхний угол.
func drawText(screen *ebiten.Image, s string, x, y float32, c color.Color) {
	ascent := Face.Metrics().Ascent.Ceil()
	text.Draw(screen, s, Face, int(x), int(y)+ascent, c)
}

// drawTextCentered центрирует строку по горизонтали относительно cx.
func drawTextCentered(screen *ebiten.Image, s string, cx, y float32, c color.Color) {
	w := text.BoundString(Face, s).Dx()
	drawText(screen, s, cx-float32(w)/2, y, c)
}

// drawTextOutlined рисует текст с обводкой толщиной thickness.
func drawTextOutlined(screen *ebiten.Image, s string, cx, y float32, c, outline color.Color, thickness int) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawTextCentered(screen, s, cx+float32(dx), y+float32(dy), outline)
		}
	}
	drawTextCentered(screen, s, cx, y, c)
}

// DrawTitle рисует заголовок экрана с обводкой.
func DrawTitle(screen *ebiten.Image, s string, cx, y float32) {
	drawTextOutlined(screen, s, cx, y, config.ProgressBarColor, color.Black, 2)
}

// DrawHint рисует строку подсказки по центру.
func DrawHint(screen *ebiten.Image, s string, cx, y float32) {
	drawTextCentered(screen, s, cx, y, descriptionColor)
}
