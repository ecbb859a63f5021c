package defs

import "go-ball-brawler/internal/component"

// BallRecipe converts Count balls of Input into one ball of Output.
type BallRecipe struct {
	Input  component.BallType
	Count  int
	Output component.BallType
}

// RecipeLibrary holds all the ball upgrade recipes in the game.
var RecipeLibrary = []BallRecipe{
	{Input: component.BallNormal, Count: 5, Output: component.BallLightning},
	{Input: component.BallLightning, Count: 5, Output: component.BallGhost},
	{Input: component.BallFire, Count: 5, Output: component.BallBomb},
}

// RecipeFor returns the recipe consuming the given ball type.
func RecipeFor(t component.BallType) (BallRecipe, bool) {
	for _, r := range RecipeLibrary {
		if r.Input == t {
			return r, true
		}
	}
	return BallRecipe{}, false
}
