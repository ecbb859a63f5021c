// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	vec "go-ball-brawler/pkg/utils"
)

// PauseButton — круглая кнопка паузы в HUD. Сама паузу не переключает,
// только сообщает о клике и рисует текущее состояние.
type PauseButton struct {
	X, Y       float32
	Size       float32
	PauseColor color.Color
	PlayColor  color.Color
	// sinceClick — время с последнего клика, для анимации нажатия.
	sinceClick float64
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
		sinceClick: math.Inf(1),
	}
}

// Update advances the press animation.
func (b *PauseButton) Update(deltaTime float64) {
	b.sinceClick += deltaTime
}

// Press запускает анимацию нажатия.
func (b *PauseButton) Press() {
	b.sinceClick = 0
}

func (b *PauseButton) Draw(screen *ebiten.Image, paused bool) {
	scale := 1.0 + 0.3*math.Exp(-b.sinceClick*8)
	rectSize := b.Size * 0.5 * float32(scale)

	vector.StrokeCircle(screen, b.X, b.Y, b.Size, 1, color.White, true)
	if paused {
		// Треугольник (play)
		var path vector.Path
		path.MoveTo(b.X-rectSize*0.8, b.Y-rectSize)
		path.LineTo(b.X-rectSize*0.8, b.Y+rectSize)
		path.LineTo(b.X+rectSize, b.Y)
		path.Close()
		fillPath(screen, &path, b.PlayColor)
		return
	}
	// Два прямоугольника (pause)
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
}

func (b *PauseButton) IsClicked(mouse vec.Vector2) bool {
	return vec.Distance(mouse, vec.Vec(float64(b.X), float64(b.Y))) <= float64(b.Size)
}

// whiteImage — источник цвета для DrawTriangles.
var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

func fillPath(screen *ebiten.Image, path *vector.Path, c color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, bl, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(bl) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whiteImage.SubImage(whiteImage.Bounds().Inset(1)).(*ebiten.Image), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
