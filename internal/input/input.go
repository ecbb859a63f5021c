// Package input describes what the simulation reads from the player each frame.
// Device polling lives in input/device; the core only sees State.
package input

import "go-ball-brawler/pkg/utils"

// State — снимок ввода за один кадр.
type State struct {
	Up, Down, Left, Right bool

	// Pointer — позиция курсора в координатах поля.
	Pointer utils.Vector2
	// Primary — основное нажатие (бросок, выбор карты, рестарт).
	Primary bool
	// Pause переключает паузу, срабатывает один раз на нажатие.
	Pause bool
	// Craft превращает пять мячей в один мяч следующего уровня.
	Craft bool
	// Choice — номер карты улучшения с клавиатуры, 1..3; 0 если не нажато.
	Choice int
}

// Source поставляет ввод. ConsumePrimary гасит нажатие, чтобы одно
// нажатие не сработало дважды в пределах кадра.
type Source interface {
	State() State
	ConsumePrimary()
}

// Static is a Source with a fixed state, used for scripted play and tests.
type Static struct {
	S State
}

func (s *Static) State() State {
	return s.S
}

func (s *Static) ConsumePrimary() {
	s.S.Primary = false
}
