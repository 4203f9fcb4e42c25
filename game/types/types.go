package types

// Point is a cell coordinate on the grid. Y grows downward.
type Point struct {
	X, Y int
}

// Add returns the point translated by the given vector.
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether the point lies within the grid bounds.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the total number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Game constants
const (
	MinGridSize        = 4 // Smallest playable grid side
	DefaultGridWidth   = 20
	DefaultGridHeight  = 20
	DefaultTickMillis  = 100
	InitialSnakeLength = 3
)

// Direction is a cardinal movement direction.
type Direction int

const (
	NONE Direction = iota // 0
	UP                    // 1
	RIGHT                 // 2
	DOWN                  // 3
	LEFT                  // 4
)

// ToPoint converts a Direction into a movement vector.
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the 180-degree reverse of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return NONE
	}
}

var directionName = map[Direction]string{
	NONE:  "none",
	UP:    "up",
	RIGHT: "right",
	DOWN:  "down",
	LEFT:  "left",
}

func (d Direction) String() string {
	return directionName[d]
}

// GameState is the lifecycle state of a round. Won and Lost are
// terminal: once reached, the round never goes back to Running.
type GameState int

const (
	Running GameState = iota
	Won
	Lost
)

var stateName = map[GameState]string{
	Running: "running",
	Won:     "won",
	Lost:    "lost",
}

func (s GameState) String() string {
	return stateName[s]
}

// Terminal reports whether no further tick can change the round outcome.
func (s GameState) Terminal() bool {
	return s == Won || s == Lost
}

// TickResult is the outcome of a single simulation step.
type TickResult int

const (
	TickMoved TickResult = iota
	TickAte
	TickLost
	TickWon
	TickTerminal // tick called after the round already ended
)

var tickResultName = map[TickResult]string{
	TickMoved:    "moved",
	TickAte:      "ate",
	TickLost:     "lost",
	TickWon:      "won",
	TickTerminal: "terminal",
}

func (t TickResult) String() string {
	return tickResultName[t]
}
