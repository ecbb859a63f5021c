// internal/ui/upgrade_cards.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/defs"
	"go-ball-brawler/internal/system"
)

var (
	cardColor        = color.RGBA{20, 20, 35, 240}
	cardHoverColor   = color.RGBA{40, 40, 70, 240}
	overlayColor     = color.RGBA{0, 0, 0, 150}
	descriptionColor = color.RGBA{190, 190, 200, 255}
)

func rarityColor(r defs.Rarity) color.RGBA {
	if c, ok := config.RarityColors[string(r)]; ok {
		return c
	}
	return config.RarityColors[string(defs.RarityCommon)]
}

// DrawUpgradeCards рисует экран выбора улучшения. Карточки лежат там же,
// где их ищет system.UpgradeCardAt.
func DrawUpgradeCards(screen *ebiten.Image, options []defs.UpgradeDefinition, hovered, pending int) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, overlayColor, false)

	title := "LEVEL UP!"
	if pending > 1 {
		title = fmt.Sprintf("LEVEL UP! (%d choices left)", pending)
	}
	drawTextOutlined(screen, title, config.ScreenWidth/2, config.UpgradeCardStartY-50, config.ProgressBarColor, color.Black, 1)
	drawTextCentered(screen, "Click a card or press 1-3", config.ScreenWidth/2, config.UpgradeCardStartY-30, descriptionColor)

	for i, opt := range options {
		r := system.UpgradeCardRect(i)
		x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
		bg := cardColor
		if i == hovered {
			bg = cardHoverColor
		}
		rc := rarityColor(opt.Rarity)

		vector.DrawFilledRect(screen, x, y, w, h, bg, false)
		vector.StrokeRect(screen, x, y, w, h, 2, rc, false)

		drawText(screen, fmt.Sprintf("[%d]", i+1), x+12, y+12, descriptionColor)
		drawTextCentered(screen, opt.Name, x+w/2, y+30, rc)
		drawTextCentered(screen, opt.Description, x+w/2, y+62, config.TextLightColor)
		drawTextCentered(screen, fmt.Sprintf("%s / %s", opt.Category, opt.Rarity), x+w/2, y+h-28, descriptionColor)
	}
}
