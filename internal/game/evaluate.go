package game

// RoundResult is the outcome of a single round, from the robot's side.
type RoundResult string

const (
	Tie        RoundResult = "tie"
	RobotWins  RoundResult = "robot"
	PlayerWins RoundResult = "player"
)

// Announcement returns the phrase spoken and displayed for a result.
func (r RoundResult) Announcement() string {
	switch r {
	case Tie:
		return "It's a tie!"
	case RobotWins:
		return "Stretch wins!"
	case PlayerWins:
		return "You win!"
	default:
		return string(r)
	}
}

// beats maps each move to the move it defeats.
var beats = map[Move]Move{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

// Evaluate scores a round under the standard beats-relation.
// It is pure and total over the 3x3 move space.
func Evaluate(robot, player Move) RoundResult {
	switch {
	case robot == player:
		return Tie
	case beats[robot] == player:
		return RobotWins
	default:
		return PlayerWins
	}
}
