// internal/input/device/ebiten.go
package device

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-ball-brawler/internal/input"
	"go-ball-brawler/pkg/utils"
)

// Ebiten опрашивает клавиатуру и мышь один раз за кадр.
type Ebiten struct {
	current input.State
}

func NewEbiten() *Ebiten {
	return &Ebiten{}
}

// Poll читает состояние устройств. Вызывается в начале каждого Update.
func (e *Ebiten) Poll() {
	mx, my := ebiten.CursorPosition()
	s := input.State{
		Up:      ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Pointer: utils.Vec(float64(mx), float64(my)),
		Primary: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP),
		Craft: inpututil.IsKeyJustPressed(ebiten.KeyU),
	}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if inpututil.IsKeyJustPressed(key) {
			s.Choice = i + 1
		}
	}
	e.current = s
}

func (e *Ebiten) State() input.State {
	return e.current
}

func (e *Ebiten) ConsumePrimary() {
	e.current.Primary = false
}
