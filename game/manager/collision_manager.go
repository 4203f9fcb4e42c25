package manager

import (
	"gosnake/game/entity"
	"gosnake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsWallCollision checks if a position lies outside the grid.
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsSelfCollision checks if a position overlaps the snake's body.
// When tailVacates is true the last cell is skipped: on a plain move
// the tail leaves its cell during the same tick the head arrives.
func (cm *CollisionManager) IsSelfCollision(pos types.Point, snake *entity.Snake, tailVacates bool) bool {
	body := snake.Body
	if tailVacates {
		body = body[:len(body)-1]
	}
	for _, part := range body {
		if pos == part {
			return true
		}
	}
	return false
}

// CheckMove classifies the collision outcome of moving the head to pos.
func (cm *CollisionManager) CheckMove(pos types.Point, snake *entity.Snake, tailVacates bool) CollisionType {
	if cm.IsWallCollision(pos) {
		return WallCollision
	}
	if cm.IsSelfCollision(pos, snake, tailVacates) {
		return SelfCollision
	}
	return NoCollision
}
