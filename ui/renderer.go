package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gosnake/game"
	"gosnake/game/types"
)

const borderPadding = 10 // Padding around game area

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// Calculate available space for the grid after border padding
	availableWidth := r.screenWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 2) - 30 // 30 for the score line

	cellW := availableWidth / int32(g.Grid.Width)
	cellH := availableHeight / int32(g.Grid.Height)
	r.cellSize = min(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(g.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(g.Grid.Height)

	// Center the grid below the score line
	r.offsetX = (r.screenWidth - r.totalGridWidth) / 2
	r.offsetY = 30 + (r.screenHeight-30-r.totalGridHeight)/2

	// Grid background and border
	rl.DrawRectangle(
		r.offsetX-1,
		r.offsetY-1,
		r.totalGridWidth+2,
		r.totalGridHeight+2,
		rl.DarkGray,
	)
	rl.DrawRectangle(
		r.offsetX,
		r.offsetY,
		r.totalGridWidth,
		r.totalGridHeight,
		rl.Black,
	)

	// Snake body; head drawn brighter
	snake := g.GetSnake()
	for i, part := range snake.Body {
		color := rl.Green
		if i == 0 {
			color = rl.Lime
		}
		rl.DrawRectangle(
			r.offsetX+int32(part.X)*r.cellSize,
			r.offsetY+int32(part.Y)*r.cellSize,
			r.cellSize-1,
			r.cellSize-1,
			color,
		)
	}

	// Food
	if food, ok := g.GetFood(); ok {
		rl.DrawRectangle(
			r.offsetX+int32(food.X)*r.cellSize,
			r.offsetY+int32(food.Y)*r.cellSize,
			r.cellSize-1,
			r.cellSize-1,
			rl.Red,
		)
	}

	scoreText := fmt.Sprintf("Score: %d   High: %d", g.Score(), g.HighScore())
	rl.DrawText(scoreText, borderPadding, 5, 20, rl.RayWhite)

	if g.State().Terminal() {
		r.drawOverlay(g)
	}

	rl.EndDrawing()
}

// drawOverlay dims the board and shows the round outcome.
func (r *Renderer) drawOverlay(g *game.Game) {
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Fade(rl.Black, 0.6))

	msg := "GAME OVER"
	if g.State() == types.Won {
		msg = "YOU WIN"
	}
	msgWidth := rl.MeasureText(msg, 40)
	rl.DrawText(msg, r.offsetX+(r.totalGridWidth-msgWidth)/2, r.offsetY+r.totalGridHeight/2-40, 40, rl.RayWhite)

	hint := "Press ENTER to restart"
	hintWidth := rl.MeasureText(hint, 20)
	rl.DrawText(hint, r.offsetX+(r.totalGridWidth-hintWidth)/2, r.offsetY+r.totalGridHeight/2+10, 20, rl.LightGray)
}
