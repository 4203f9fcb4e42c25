package manager

import (
	"gosnake/game/types"
)

// StateManager owns the round lifecycle state and the session score
// records. Terminal transitions are one-way: once a round is Won or
// Lost only NewRound moves it back to Running. Scores live in memory
// for the session only.
type StateManager struct {
	state        types.GameState
	highScore    int
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		state:        types.Running,
		highScore:    0,
		scoreHistory: make([]int, 0),
	}
}

func (sm *StateManager) State() types.GameState {
	return sm.state
}

func (sm *StateManager) Terminal() bool {
	return sm.state.Terminal()
}

// MarkLost ends the round as Lost. Ignored if the round already ended.
func (sm *StateManager) MarkLost() {
	if sm.state.Terminal() {
		return
	}
	sm.state = types.Lost
}

// MarkWon ends the round as Won. Ignored if the round already ended.
func (sm *StateManager) MarkWon() {
	if sm.state.Terminal() {
		return
	}
	sm.state = types.Won
}

// NewRound starts a fresh round, keeping high score and history.
func (sm *StateManager) NewRound() {
	sm.state = types.Running
}

// RecordScore archives a finished round's score.
func (sm *StateManager) RecordScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
}

func (sm *StateManager) HighScore() int {
	return sm.highScore
}

func (sm *StateManager) ScoreHistory() []int {
	return sm.scoreHistory
}
