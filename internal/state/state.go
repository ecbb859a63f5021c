// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// State — интерфейс для всех состояний.
// Update может вернуть ebiten.Termination, чтобы завершить игру.
type State interface {
	Enter()
	Update(deltaTime float64) error
	Draw(screen *ebiten.Image)
	Exit()
}

// Options — параметры новых сессий, общие для всех состояний.
type Options struct {
	Seed    int64
	ShowAim bool
	Log     zerolog.Logger
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	opts    Options
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(opts Options) *StateMachine {
	return &StateMachine{opts: opts}
}

// SetState выходит из текущего состояния и входит в новое.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state, or nil.
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) error {
	if sm.current == nil {
		return nil
	}
	return sm.current.Update(deltaTime)
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
