// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
)

const (
	panelHeight    = 220
	panelMargin    = 20
	animationSpeed = 900.0 // px/s
	lineHeight     = 20
	columnSpacing  = 260
)

// RunSummary — итоги забега для панели окончания игры.
type RunSummary struct {
	Level   int
	Section int
	Wave    int
	Kills   int
	Stats   component.RunStats
	RunID   string
}

// InfoPanel выезжает снизу с итогами забега после окончания игры.
type InfoPanel struct {
	IsVisible bool
	summary   RunSummary
	currentY  float64
	targetY   float64
}

// NewInfoPanel creates a hidden panel.
func NewInfoPanel() *InfoPanel {
	return &InfoPanel{
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) Show(summary RunSummary) {
	p.summary = summary
	p.IsVisible = true
	p.targetY = config.ScreenHeight/2 - panelHeight/2
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

func (p *InfoPanel) Update(deltaTime float64) {
	if p.currentY == p.targetY {
		return
	}
	step := animationSpeed * deltaTime
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < step:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += step
	default:
		p.currentY -= step
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY),
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight,
	)
	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	cx := float32(panelRect.Min.X + panelRect.Dx()/2)
	y := float32(panelRect.Min.Y + 16)
	drawTextOutlined(screen, "GAME OVER", cx, y, config.HealthBarColor, color.Black, 1)
	y += lineHeight * 2

	s := p.summary
	col1X := float32(panelRect.Min.X + 40)
	col2X := col1X + columnSpacing
	rows := [][2]string{
		{fmt.Sprintf("Level: %d", s.Level), fmt.Sprintf("Section: %s", toRoman(s.Section+1))},
		{fmt.Sprintf("Kills: %s", Count(s.Kills)), fmt.Sprintf("Bosses: %d", s.Stats.BossesKilled)},
		{fmt.Sprintf("Balls thrown: %s", Count(s.Stats.BallsThrown)), fmt.Sprintf("Wave: %d", s.Wave)},
		{fmt.Sprintf("Time: %s", formatDuration(s.Stats.TimeSurvived)), ""},
	}
	for _, row := range rows {
		drawText(screen, row[0], col1X, y, config.TextLightColor)
		drawText(screen, row[1], col2X, y, config.TextLightColor)
		y += lineHeight
	}

	y += lineHeight / 2
	drawTextCentered(screen, "Click or press Space to play again", cx, y, config.ProgressBarColor)
	if s.RunID != "" {
		drawText(screen, "run "+s.RunID, float32(panelRect.Min.X+8), float32(panelRect.Max.Y-16), color.RGBA{120, 120, 140, 255})
	}
}

// formatDuration prints seconds as m:ss.
func formatDuration(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
