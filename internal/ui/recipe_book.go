// internal/ui/recipe_book.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/defs"
)

// RecipeBook отображает окно с рецептами улучшения мячей.
type RecipeBook struct {
	X, Y    float32
	Width   float32
	Height  float32
	recipes []defs.BallRecipe
}

// NewRecipeBook создает новую книгу рецептов.
func NewRecipeBook(x, y, width, height float32, recipes []defs.BallRecipe) *RecipeBook {
	return &RecipeBook{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		recipes: recipes,
	}
}

// Draw отрисовывает книгу. Доступные рецепты белые, остальные серые.
func (rb *RecipeBook) Draw(screen *ebiten.Image, inv *component.Inventory) {
	whiteColor := color.RGBA{255, 255, 255, 255}
	grayColor := color.RGBA{100, 100, 100, 255}

	// --- Фон и рамка ---
	bgColor := color.RGBA{R: 20, G: 20, B: 30, A: 230}
	vector.DrawFilledRect(screen, rb.X, rb.Y, rb.Width, rb.Height, bgColor, false)
	borderColor := color.RGBA{R: 70, G: 100, B: 120, A: 255}
	vector.StrokeRect(screen, rb.X, rb.Y, rb.Width, rb.Height, 2, borderColor, false)

	drawTextCentered(screen, "Recipes (U to craft)", rb.X+rb.Width/2, rb.Y+10, whiteColor)

	lineHeight := float32(Face.Metrics().Height.Ceil())
	startY := rb.Y + 10 + lineHeight*2
	for i, r := range rb.recipes {
		have := inv.Count(r.Input)
		c := grayColor
		if have >= r.Count {
			c = whiteColor
		}
		y := startY + float32(i)*lineHeight*1.5

		vector.DrawFilledCircle(screen, rb.X+24, y+lineHeight/2, 5, defs.Ball(r.Input).RGBA, true)
		line := fmt.Sprintf("%d x %s = 1 x %s   (%d/%d)", r.Count, r.Input, r.Output, have, r.Count)
		drawText(screen, line, rb.X+36, y, c)
	}
}
