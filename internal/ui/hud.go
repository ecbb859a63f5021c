// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"go-ball-brawler/internal/app"
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/defs"
	"go-ball-brawler/internal/system"
	vec "go-ball-brawler/pkg/utils"
)

const (
	ballBarY     = config.ScreenHeight - 28
	ballSlotSize = 64
)

var powerUpTextColor = colornames.Khaki

// HUD — верхняя панель, полоса мячей и оверлеи состояний.
type HUD struct {
	health *PlayerHealthIndicator
	level  *PlayerLevelIndicator
	wave   *WaveIndicator
	Pause  *PauseButton
	panel  *InfoPanel
	book   *RecipeBook
}

func NewHUD() *HUD {
	return &HUD{
		health: NewPlayerHealthIndicator(10, 12),
		level:  NewPlayerLevelIndicator(10, 36),
		wave:   NewWaveIndicator(config.ScreenWidth/2+40, 10),
		Pause:  NewPauseButton(config.ScreenWidth-24, config.HUDHeight/2, 14, colornames.Lightgray, colornames.Limegreen),
		panel:  NewInfoPanel(),
		book:   NewRecipeBook(120, 260, 400, 160, defs.RecipeLibrary),
	}
}

// Update animates the HUD. The run summary panel follows the game state.
func (h *HUD) Update(deltaTime float64, s *app.Snapshot, runID string) {
	h.Pause.Update(deltaTime)
	if s.State == component.StateGameOver {
		if !h.panel.IsVisible {
			h.panel.Show(RunSummary{
				Level:   s.Player.Stats.Level,
				Section: s.Progress.Section,
				Wave:    s.Wave,
				Kills:   s.Kills,
				Stats:   s.Stats,
				RunID:   runID,
			})
		}
	} else {
		h.panel.Hide()
	}
	h.panel.Update(deltaTime)
}

func (h *HUD) Draw(screen *ebiten.Image, s *app.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.HUDHeight, config.HUDColor, false)

	h.health.Draw(screen, s.Player.Stats)
	h.level.Draw(screen, s.Player.Stats.Level, s.Player.Stats.XP, s.Player.Stats.XPToNextLevel, s.PendingChoices)

	var boss *BossStatus
	if s.Boss != nil {
		boss = &BossStatus{Def: defs.BossLibrary[s.Boss.Type], Fraction: s.BossHPFraction()}
	}
	h.wave.Draw(screen, s.Progress.Section, s.Wave, s.ProgressFraction(), boss)

	drawText(screen, "Kills "+Count(s.Kills), config.ScreenWidth-140, 12, config.TextLightColor)
	drawBuffs(screen, s.Player.Buffs, 10, ballBarY-18)
	h.Pause.Draw(screen, s.State == component.StatePaused)

	drawBallBar(screen, &s.Player)

	switch s.State {
	case component.StatePaused:
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, overlayColor, false)
		drawTextOutlined(screen, "PAUSED", config.ScreenWidth/2, 200, config.TextLightColor, color.Black, 2)
		h.book.Draw(screen, &s.Player.Inventory)
	case component.StateLevelUp:
		DrawUpgradeCards(screen, s.Options, s.HoveredOption, s.PendingChoices)
	}
	h.panel.Draw(screen)
}

// PauseClicked reports whether p is over the pause button and animates it.
func (h *HUD) PauseClicked(p vec.Vector2) bool {
	if !h.Pause.IsClicked(p) {
		return false
	}
	h.Pause.Press()
	return true
}

// drawBuffs — активные баффы с оставшимся временем.
func drawBuffs(screen *ebiten.Image, buffs []component.Buff, x, y float32) {
	for _, b := range buffs {
		label := fmt.Sprintf("%s %.0fs", b.Type, b.Duration)
		drawText(screen, label, x, y, powerUpTextColor)
		x += float32(len(label)+1) * config.TextCharWidth
	}
}

// drawBallBar рисует запас мячей внизу экрана; выбранный тип обведён.
func drawBallBar(screen *ebiten.Image, p *component.Player) {
	x := float32(10)
	for t := component.BallNormal; t < component.BallTypeCount; t++ {
		if !p.Inventory.Unlocked(t) {
			continue
		}
		c := defs.Ball(t).RGBA
		count := p.Inventory.Count(t)
		if count == 0 {
			c = color.RGBA{80, 80, 80, 255}
		}
		vector.DrawFilledCircle(screen, x+8, ballBarY+8, 7, c, true)
		if t == p.SelectedBall {
			vector.StrokeCircle(screen, x+8, ballBarY+8, 10, 2, color.White, true)
		}
		drawText(screen, fmt.Sprintf("x%d", count), x+20, ballBarY+2, config.TextLightColor)
		x += ballSlotSize
	}
	if len(system.CraftableTypes(p)) > 0 {
		drawText(screen, "U: craft", config.ScreenWidth-70, ballBarY+2, config.ProgressBarColor)
	}
}
