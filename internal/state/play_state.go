// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-ball-brawler/internal/app"
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/input/device"
	"go-ball-brawler/internal/render"
	"go-ball-brawler/internal/ui"
)

// PlayState ведёт одну игровую сессию: опрашивает ввод, обновляет app.Game
// и рисует его снимок.
type PlayState struct {
	sm       *StateMachine
	game     *app.Game
	input    *device.Ebiten
	renderer *render.Renderer
	hud      *ui.HUD
	snapshot app.Snapshot
}

func NewPlayState(sm *StateMachine) *PlayState {
	return &PlayState{
		sm:       sm,
		game:     app.NewGame(sm.opts.Seed, sm.opts.Log),
		input:    device.NewEbiten(),
		renderer: render.NewRenderer(sm.opts.ShowAim),
		hud:      ui.NewHUD(),
	}
}

func (p *PlayState) Enter() {
	p.snapshot = p.game.Snapshot()
}

func (p *PlayState) Update(deltaTime float64) error {
	p.input.Poll()
	p.step(deltaTime)

	if p.game.State() == component.StatePaused {
		p.sm.SetState(NewPauseState(p.sm, p))
	}
	return nil
}

// step обновляет игру на один кадр. Клик по кнопке паузы не долетает до игры.
func (p *PlayState) step(deltaTime float64) {
	in := p.input.State()
	if in.Primary && p.hud.PauseClicked(in.Pointer) {
		p.input.ConsumePrimary()
		p.game.TogglePause()
	}
	p.game.Update(deltaTime, p.input)
	p.snapshot = p.game.Snapshot()
	p.hud.Update(deltaTime, &p.snapshot, p.game.RunID)
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	p.renderer.Draw(screen, &p.snapshot)
	p.hud.Draw(screen, &p.snapshot)
}

func (p *PlayState) Exit() {}

// Game returns the running session.
func (p *PlayState) Game() *app.Game {
	return p.game
}
