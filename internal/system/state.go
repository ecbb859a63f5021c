// internal/system/state.go
package system

import (
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/defs"
	"go-ball-brawler/internal/entity"
	"go-ball-brawler/internal/event"
)

// StateSystem переключает состояние забега: пауза, выбор улучшений, конец игры.
// Каждое повышение уровня ставит в очередь один выбор улучшения.
type StateSystem struct {
	world   *entity.World
	rng     WeightedChooser
	events  *event.Dispatcher
	pending int
	options []defs.UpgradeDefinition
}

func NewStateSystem(world *entity.World, rng WeightedChooser, events *event.Dispatcher) *StateSystem {
	return &StateSystem{world: world, rng: rng, events: events}
}

// Options are the upgrades currently on offer.
func (s *StateSystem) Options() []defs.UpgradeDefinition {
	return s.options
}

// Pending is the number of upgrade choices still owed to the player.
func (s *StateSystem) Pending() int {
	return s.pending
}

// QueueLevelUps adds n upgrade choices and opens the first if none is on offer.
func (s *StateSystem) QueueLevelUps(n int) {
	if n <= 0 {
		return
	}
	s.pending += n
	if s.world.State == component.StatePlaying {
		s.openNext()
	}
}

// Choose applies option index and moves to the next pending choice or back to play.
func (s *StateSystem) Choose(index int, target UpgradeTarget) bool {
	if s.world.State != component.StateLevelUp || index < 0 || index >= len(s.options) {
		return false
	}
	chosen := s.options[index]
	ApplyUpgrade(chosen.ID, target)
	s.events.Emit(event.UpgradeChosen, event.UpgradeData{ID: chosen.ID})

	s.pending--
	s.options = nil
	s.world.State = component.StatePlaying
	if s.pending > 0 {
		s.openNext()
	}
	return true
}

func (s *StateSystem) openNext() {
	s.options = GenerateUpgradeOptions(s.rng, &s.world.Player.Inventory)
	if len(s.options) == 0 {
		// каталог исчерпан, выбирать нечего
		s.pending = 0
		return
	}
	s.world.State = component.StateLevelUp
}

// TogglePause switches between playing and paused. Other states are left alone.
func (s *StateSystem) TogglePause() {
	switch s.world.State {
	case component.StatePlaying:
		s.world.State = component.StatePaused
	case component.StatePaused:
		s.world.State = component.StatePlaying
		if s.pending > 0 {
			s.openNext()
		}
	}
}

// GameOver ends the run.
func (s *StateSystem) GameOver() {
	if s.world.State == component.StateGameOver {
		return
	}
	s.world.State = component.StateGameOver
	s.pending = 0
	s.options = nil
	s.events.Emit(event.GameOver, event.GameOverData{Level: s.world.Player.Stats.Level, Stats: s.world.Stats})
}
