// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-ball-brawler/internal/component"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState держит сессию на паузе. Игра продолжает получать кадры,
// чтобы фон двигался и клавиша паузы снимала её.
type PauseState struct {
	stateMachine *StateMachine
	play         *PlayState
}

func NewPauseState(sm *StateMachine, play *PlayState) *PauseState {
	return &PauseState{stateMachine: sm, play: play}
}

func (s *PauseState) Enter() {
	s.stateMachine.opts.Log.Debug().Str("run_id", s.play.Game().RunID).Msg("paused")
}

func (s *PauseState) Update(deltaTime float64) error {
	s.play.input.Poll()
	s.play.step(deltaTime)

	if s.play.Game().State() != component.StatePaused {
		s.stateMachine.SetState(s.play)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)
}

func (s *PauseState) Exit() {}
