package game

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"go.uber.org/zap"

	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/gesture"
	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/speech"
	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/ui"
)

// CountdownWords returns the countdown in its user-facing order. The
// literal Rock, Paper, Scissors sequence is a contract with the player.
func CountdownWords() []string {
	return []string{"Rock", "Paper", "Scissors"}
}

// Choreography is the theatrics surface the round controller drives.
type Choreography interface {
	PerformCountdown(ctx context.Context, words []string) error
	CommitGesture(ctx context.Context, g gesture.Gesture) error
}

// OpponentInput acquires the player's move. Implementations re-prompt
// internally on invalid input; the returned move is already validated.
type OpponentInput interface {
	PromptMove(ctx context.Context) (Move, error)
}

// roundState names the phases of a round, in order. Transitions are
// strictly sequential and non-retryable.
type roundState string

const (
	stateAnnouncing       roundState = "announcing"
	stateCountdown        roundState = "countdown"
	stateCommitting       roundState = "committing"
	stateAwaitingOpponent roundState = "awaiting_opponent"
	stateScored           roundState = "scored"
	stateAnnounced        roundState = "announced"
)

// RoundRecord is the scored outcome of one round.
type RoundRecord struct {
	Round  int
	Robot  Move
	Player Move
	Result RoundResult
}

// Round drives one full round of play.
type Round struct {
	choreo   Choreography
	speaker  speech.Speaker
	opponent OpponentInput
	rng      *rand.Rand
	out      io.Writer
	logger   *zap.Logger
}

// NewRound creates a round controller.
func NewRound(c Choreography, s speech.Speaker, o OpponentInput, rng *rand.Rand, out io.Writer, logger *zap.Logger) *Round {
	return &Round{choreo: c, speaker: s, opponent: o, rng: rng, out: out, logger: logger}
}

// Play runs one round and returns its record. The robot's move is fixed
// before the countdown begins so the theatrics cannot influence the
// outcome. An actuator fault terminates the round and is fatal to the
// session.
func (r *Round) Play(ctx context.Context, num int) (RoundRecord, error) {
	// The draw happens before any theatrics.
	robotMove := RandomMove(r.rng)

	r.transition(num, stateAnnouncing)
	speech.SayBestEffort(ctx, r.speaker, "Let's play!", r.logger)
	fmt.Fprintln(r.out, "\nGet ready...")

	r.transition(num, stateCountdown)
	if err := r.choreo.PerformCountdown(ctx, CountdownWords()); err != nil {
		return RoundRecord{}, fmt.Errorf("countdown: %w", err)
	}
	speech.SayBestEffort(ctx, r.speaker, "Shoot!", r.logger)
	fmt.Fprintf(r.out, "Shoot!\n\n")

	r.transition(num, stateCommitting)
	if err := r.choreo.CommitGesture(ctx, robotMove.Gesture()); err != nil {
		return RoundRecord{}, fmt.Errorf("commit gesture: %w", err)
	}
	fmt.Fprintln(r.out, ui.RobotMove("stretch played: "+string(robotMove)))
	speech.SayBestEffort(ctx, r.speaker, "I choose "+string(robotMove), r.logger)

	r.transition(num, stateAwaitingOpponent)
	playerMove, err := r.opponent.PromptMove(ctx)
	if err != nil {
		return RoundRecord{}, fmt.Errorf("prompt move: %w", err)
	}

	r.transition(num, stateScored)
	result := Evaluate(robotMove, playerMove)

	r.transition(num, stateAnnounced)
	fmt.Fprintf(r.out, "\n%s\n", ui.Result(result.Announcement()))
	speech.SayBestEffort(ctx, r.speaker, result.Announcement(), r.logger)

	return RoundRecord{Round: num, Robot: robotMove, Player: playerMove, Result: result}, nil
}

func (r *Round) transition(num int, s roundState) {
	r.logger.Debug("round state", zap.Int("round", num), zap.String("state", string(s)))
}
