package manager

import (
	"golang.org/x/exp/rand"

	"gosnake/game/entity"
	"gosnake/game/types"
)

// FoodManager places food on the grid using the game's own PRNG so
// placement is reproducible from a seed.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// Place picks a cell uniformly at random among all cells not occupied
// by the snake. Returns false when the snake covers the whole grid and
// no cell is left for food.
func (fm *FoodManager) Place(snake *entity.Snake) (types.Point, bool) {
	free := fm.grid.Cells() - snake.Len()
	if free <= 0 {
		return types.Point{}, false
	}

	// Walk the grid and stop at the n-th free cell.
	n := fm.rng.Intn(free)
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			cell := types.Point{X: x, Y: y}
			if snake.Occupies(cell) {
				continue
			}
			if n == 0 {
				return cell, true
			}
			n--
		}
	}

	// Unreachable as long as the snake body cells are unique and in bounds.
	return types.Point{}, false
}
