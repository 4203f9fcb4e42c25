package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"gosnake/game"
	"gosnake/game/types"
)

// Run drives the game on a tcell screen until the player quits.
// A single select loop serializes input and ticks, so the core is
// never touched from two goroutines.
func Run(g *game.Game, tickInterval time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	draw(screen, g)

	for {
		select {
		case ev := <-eventChan:
			if !handleInput(ev, g) {
				return nil
			}
			draw(screen, g)

		case <-ticker.C:
			if !g.State().Terminal() {
				g.Tick()
			}
			draw(screen, g)
		}
	}
}

// handleInput applies a tcell event to the game. Returns false to quit.
func handleInput(ev tcell.Event, g *game.Game) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		g.SetDirection(types.UP)
	case tcell.KeyDown:
		g.SetDirection(types.DOWN)
	case tcell.KeyLeft:
		g.SetDirection(types.LEFT)
	case tcell.KeyRight:
		g.SetDirection(types.RIGHT)
	case tcell.KeyEnter:
		if g.State().Terminal() {
			g.Reset()
		}
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			return false
		case 'k':
			g.SetDirection(types.UP)
		case 'j':
			g.SetDirection(types.DOWN)
		case 'h':
			g.SetDirection(types.LEFT)
		case 'l':
			g.SetDirection(types.RIGHT)
		}
	}
	return true
}

func draw(screen tcell.Screen, g *game.Game) {
	screen.Clear()

	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	snakeStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	headStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	foodStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	// Board offset: one line of score, one cell of border
	const offX, offY = 1, 2

	// Border box around the grid
	for x := 0; x <= g.Grid.Width+1; x++ {
		screen.SetContent(offX-1+x, offY-1, '#', nil, borderStyle)
		screen.SetContent(offX-1+x, offY+g.Grid.Height, '#', nil, borderStyle)
	}
	for y := 0; y <= g.Grid.Height+1; y++ {
		screen.SetContent(offX-1, offY-1+y, '#', nil, borderStyle)
		screen.SetContent(offX+g.Grid.Width, offY-1+y, '#', nil, borderStyle)
	}

	snake := g.GetSnake()
	for i, part := range snake.Body {
		ch := 'o'
		style := snakeStyle
		if i == 0 {
			ch = '@'
			style = headStyle
		}
		screen.SetContent(offX+part.X, offY+part.Y, ch, nil, style)
	}

	if food, ok := g.GetFood(); ok {
		screen.SetContent(offX+food.X, offY+food.Y, '*', nil, foodStyle)
	}

	drawText(screen, 0, 0, textStyle, fmt.Sprintf("Score: %d  High: %d", g.Score(), g.HighScore()))

	if g.State().Terminal() {
		msg := "GAME OVER - press ENTER to restart, q to quit"
		if g.State() == types.Won {
			msg = "YOU WIN - press ENTER to restart, q to quit"
		}
		drawText(screen, 0, offY+g.Grid.Height+2, textStyle, msg)
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, ch := range text {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
