package gesture

// Gesture is a named physical pose the robot's wrist and gripper can assume.
// Reset is a pose-only gesture with no game meaning.
type Gesture string

const (
	Reset    Gesture = "reset"
	Rock     Gesture = "rock"
	Paper    Gesture = "paper"
	Scissors Gesture = "scissors"
)

// All returns every gesture in pose-table order.
func All() []Gesture {
	return []Gesture{Reset, Rock, Paper, Scissors}
}

// DisplayName returns a human-readable label for the gesture.
func (g Gesture) DisplayName() string {
	switch g {
	case Reset:
		return "Reset"
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return string(g)
	}
}
