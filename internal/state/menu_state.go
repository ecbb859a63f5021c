// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/ui"
	vec "go-ball-brawler/pkg/utils"
)

// MenuState — стартовый экран. Space или клик по кнопке начинает игру, Esc выходит.
type MenuState struct {
	sm    *StateMachine
	start *ui.MenuButton
	mouse vec.Vector2
}

func NewMenuState(sm *StateMachine) *MenuState {
	rect := vec.Rect{X: config.ScreenWidth/2 - 100, Y: config.ScreenHeight / 2, W: 200, H: 50}
	return &MenuState{sm: sm, start: ui.NewMenuButton(rect, "START")}
}

func (m *MenuState) Enter() {
	m.sm.opts.Log.Debug().Msg("menu")
}

func (m *MenuState) Update(deltaTime float64) error {
	mx, my := ebiten.CursorPosition()
	m.mouse = vec.Vec(float64(mx), float64(my))

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && m.start.IsClicked(m.mouse)
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewPlayState(m.sm))
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundTop)
	vector.DrawFilledRect(screen, 0, config.ScreenHeight/2-160, config.ScreenWidth, 80, config.HUDColor, false)
	ui.DrawTitle(screen, "BALL BRAWLER", config.ScreenWidth/2, config.ScreenHeight/2-130)
	m.start.Draw(screen, m.mouse)
	ui.DrawHint(screen, "WASD move  /  click throw  /  U craft  /  P pause", config.ScreenWidth/2, config.ScreenHeight/2+90)
}

func (m *MenuState) Exit() {}
