package main

import (
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gosnake/config"
	"gosnake/game"
	"gosnake/game/types"
	"gosnake/term"
	"gosnake/ui"
)

func main() {
	cfg := config.Envs

	speed := flag.Int("speed", cfg.TickMillis, "Tick interval in milliseconds (lower = faster)")
	frontend := flag.String("frontend", cfg.Frontend, "Frontend to use: raylib or term")
	flag.Parse()

	var opts []game.Option
	if cfg.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Seed))
	}

	g, err := game.NewGame(cfg.GridWidth, cfg.GridHeight, opts...)
	if err != nil {
		log.Fatalf("Creating game: %v", err)
	}

	tickInterval := time.Duration(*speed) * time.Millisecond

	switch *frontend {
	case "term":
		if err := term.Run(g, tickInterval); err != nil {
			log.Fatalf("Terminal frontend: %v", err)
		}
	default:
		runRaylib(g, tickInterval)
	}
}

// runRaylib drives the game with a raylib window: input is polled every
// frame, the core is ticked at the fixed interval.
func runRaylib(g *game.Game, tickInterval time.Duration) {
	rl.InitWindow(800, 850, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		if rl.IsKeyPressed(rl.KeyUp) {
			g.SetDirection(types.UP)
		} else if rl.IsKeyPressed(rl.KeyDown) {
			g.SetDirection(types.DOWN)
		} else if rl.IsKeyPressed(rl.KeyLeft) {
			g.SetDirection(types.LEFT)
		} else if rl.IsKeyPressed(rl.KeyRight) {
			g.SetDirection(types.RIGHT)
		}

		if rl.IsKeyPressed(rl.KeyEnter) && g.State().Terminal() {
			g.Reset()
		}

		// Advance the core at the fixed cadence; stop once terminal.
		if !g.State().Terminal() && time.Since(lastUpdate) >= tickInterval {
			g.Tick()
			lastUpdate = time.Now()
		}

		renderer.Draw(g)
	}
}
