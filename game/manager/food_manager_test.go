package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"

	"gosnake/game/entity"
	"gosnake/game/types"
)

func TestPlaceNeverOnSnake(t *testing.T) {
	grid := types.Grid{Width: 6, Height: 6}
	rng := rand.New(rand.NewSource(42))
	fm := NewFoodManager(grid, rng)
	s := entity.NewSnake(types.Point{X: 3, Y: 3}, 3, types.RIGHT)

	for i := 0; i < 200; i++ {
		food, ok := fm.Place(s)
		assert.True(t, ok, "Placement should succeed with free cells left")
		assert.False(t, s.Occupies(food), "Food must never land on the snake")
		assert.True(t, grid.Contains(food), "Food must be inside the grid")
	}
}

func TestPlaceDeterministicWithSeed(t *testing.T) {
	grid := types.Grid{Width: 8, Height: 8}
	s := entity.NewSnake(types.Point{X: 4, Y: 4}, 3, types.RIGHT)

	fm1 := NewFoodManager(grid, rand.New(rand.NewSource(7)))
	fm2 := NewFoodManager(grid, rand.New(rand.NewSource(7)))

	for i := 0; i < 50; i++ {
		f1, _ := fm1.Place(s)
		f2, _ := fm2.Place(s)
		assert.Equal(t, f1, f2, "Same seed should give the same placement sequence")
	}
}

func TestPlaceOnFullBoard(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)))

	// Fill the whole board by hand.
	s := &entity.Snake{Direction: types.RIGHT}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			s.Body = append(s.Body, types.Point{X: x, Y: y})
		}
	}

	_, ok := fm.Place(s)
	assert.False(t, ok, "No placement should be possible on a full board")
}

func TestPlaceSingleFreeCell(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)))

	// Occupy everything except one cell.
	hole := types.Point{X: 2, Y: 1}
	s := &entity.Snake{Direction: types.RIGHT}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			cell := types.Point{X: x, Y: y}
			if cell != hole {
				s.Body = append(s.Body, cell)
			}
		}
	}

	food, ok := fm.Place(s)
	assert.True(t, ok, "The single free cell should be found")
	assert.Equal(t, hole, food, "Food should land on the only free cell")
}
