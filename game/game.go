package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"gosnake/game/entity"
	"gosnake/game/manager"
	"gosnake/game/types"
)

// ErrInvalidConfig is returned by NewGame when the requested grid or
// snake placement is not playable.
var ErrInvalidConfig = errors.New("invalid game configuration")

type settings struct {
	seed    uint64
	seedSet bool
	start   types.Point
	posSet  bool
	length  int
	dir     types.Direction
}

// Option customizes NewGame.
type Option func(*settings)

// WithSeed fixes the PRNG seed so food placement is reproducible.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
		s.seedSet = true
	}
}

// WithStart overrides the initial head position and movement direction.
func WithStart(pos types.Point, dir types.Direction) Option {
	return func(s *settings) {
		s.start = pos
		s.dir = dir
		s.posSet = true
	}
}

// WithLength overrides the initial snake length.
func WithLength(length int) Option {
	return func(s *settings) {
		s.length = length
	}
}

// Game is the game-loop core: grid, snake, food and round state. It is
// driven externally, one Tick per cadence step, and performs no I/O.
// The driver serializes SetDirection and Tick; the core does no locking.
type Game struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time
	Steps     int

	snake   *entity.Snake
	food    types.Point
	hasFood bool
	pending types.Direction

	rng          *rand.Rand
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	// initial placement, kept for Reset
	start  types.Point
	length int
	dir    types.Direction
}

// NewGame creates a round on a width x height grid. The snake starts
// centered with length 3 moving right unless overridden via options.
func NewGame(width, height int, opts ...Option) (*Game, error) {
	if width < types.MinGridSize || height < types.MinGridSize {
		return nil, fmt.Errorf("%w: grid %dx%d below minimum %d", ErrInvalidConfig, width, height, types.MinGridSize)
	}

	grid := types.Grid{
		Width:  width,
		Height: height,
	}

	cfg := settings{
		start:  types.Point{X: width / 2, Y: height / 2},
		length: types.InitialSnakeLength,
		dir:    types.RIGHT,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.seedSet {
		cfg.seed = uint64(time.Now().UnixNano())
	}

	rng := rand.New(rand.NewSource(cfg.seed))

	g := &Game{
		UUID:         uuid.New().String(),
		Grid:         grid,
		StartTime:    time.Now(),
		rng:          rng,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, rng),
		stateMgr:     manager.NewStateManager(),
		start:        cfg.start,
		length:       cfg.length,
		dir:          cfg.dir,
	}

	if err := g.spawn(); err != nil {
		return nil, err
	}
	return g, nil
}

// spawn lays out the snake and the first food for a fresh round.
func (g *Game) spawn() error {
	snake := entity.NewSnake(g.start, g.length, g.dir)
	for _, part := range snake.Body {
		if !g.Grid.Contains(part) {
			return fmt.Errorf("%w: snake cell %v outside %dx%d grid", ErrInvalidConfig, part, g.Grid.Width, g.Grid.Height)
		}
	}
	g.snake = snake
	g.pending = types.NONE
	g.food, g.hasFood = g.foodMgr.Place(snake)
	return nil
}

// SetDirection buffers the direction for the next tick. Reversing into
// the snake's own neck is ignored, as is any call after the round ended.
// A later call within the same tick overwrites the buffered direction.
func (g *Game) SetDirection(dir types.Direction) {
	if g.stateMgr.Terminal() || dir == types.NONE {
		return
	}
	if dir == g.snake.Direction.Opposite() {
		return
	}
	g.pending = dir
}

// Tick advances the snake one cell and reports the outcome. Once the
// round is Won or Lost further calls are no-ops returning TickTerminal.
func (g *Game) Tick() types.TickResult {
	if g.stateMgr.Terminal() {
		return types.TickTerminal
	}

	g.Steps++

	if g.pending != types.NONE {
		g.snake.Direction = g.pending
		g.pending = types.NONE
	}

	newHead := g.snake.Head().Add(g.snake.Direction.ToPoint())
	eating := g.hasFood && newHead == g.food

	// On a plain move the tail cell is vacated this tick, so stepping
	// onto it is legal. When eating the tail stays put.
	if g.collisionMgr.CheckMove(newHead, g.snake, !eating) != manager.NoCollision {
		g.stateMgr.MarkLost()
		g.stateMgr.RecordScore(g.snake.Score)
		return types.TickLost
	}

	if eating {
		g.snake.Grow(newHead)
		g.snake.Score++
		g.food, g.hasFood = g.foodMgr.Place(g.snake)
		if !g.hasFood {
			// Board filled: nothing left to eat.
			g.stateMgr.MarkWon()
			g.stateMgr.RecordScore(g.snake.Score)
			return types.TickWon
		}
		return types.TickAte
	}

	g.snake.Advance(newHead)
	return types.TickMoved
}

// Reset starts a new round with a fresh snake and food. Session high
// score and score history carry over.
func (g *Game) Reset() {
	// spawn can only fail on out-of-bounds placement, which NewGame
	// already validated with the same settings.
	_ = g.spawn()
	g.stateMgr.NewRound()
	g.Steps = 0
	g.StartTime = time.Now()
}

// State returns the round state. Read-only, no side effects.
func (g *Game) State() types.GameState {
	return g.stateMgr.State()
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

// GetFood returns the food cell and whether food is currently placed.
func (g *Game) GetFood() (types.Point, bool) {
	return g.food, g.hasFood
}

func (g *Game) Score() int {
	return g.snake.Score
}

func (g *Game) HighScore() int {
	return g.stateMgr.HighScore()
}

func (g *Game) ScoreHistory() []int {
	return g.stateMgr.ScoreHistory()
}

// ElapsedTime returns the current round duration in seconds.
func (g *Game) ElapsedTime() float64 {
	return time.Since(g.StartTime).Seconds()
}
