package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/gesture"
)

// Move is a playable choice in the game, usable by either player.
type Move string

const (
	Rock     Move = "rock"
	Paper    Move = "paper"
	Scissors Move = "scissors"
)

// Moves returns the playable moves in countdown order.
func Moves() []Move {
	return []Move{Rock, Paper, Scissors}
}

// ParseMove converts user input into a Move, case-insensitively.
func ParseMove(s string) (Move, error) {
	switch Move(strings.ToLower(strings.TrimSpace(s))) {
	case Rock:
		return Rock, nil
	case Paper:
		return Paper, nil
	case Scissors:
		return Scissors, nil
	default:
		return "", fmt.Errorf("invalid move %q: must be one of rock, paper, scissors", s)
	}
}

// RandomMove draws a move uniformly from the playable set.
func RandomMove(rng *rand.Rand) Move {
	moves := Moves()
	return moves[rng.Intn(len(moves))]
}

// Gesture returns the physical gesture realizing this move.
func (m Move) Gesture() gesture.Gesture {
	return gesture.Gesture(m)
}

// DisplayName returns a human-readable label for the move.
func (m Move) DisplayName() string {
	return m.Gesture().DisplayName()
}

// Description returns the legend line shown by the moves command.
func (m Move) Description() string {
	switch m {
	case Rock:
		return "Vertical closed gripper"
	case Paper:
		return "Horizontal closed gripper"
	case Scissors:
		return "Vertical open gripper (rotated 90°)"
	default:
		return ""
	}
}
