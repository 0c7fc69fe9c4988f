package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/gesture"
	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/speech"
	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/store"
	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/ui"
)

// Lift is the slice of the actuator the session controller needs to
// re-home the arm between rounds.
type Lift interface {
	MoveLiftTo(ctx context.Context, height float64) error
}

// SessionConfig parameterizes a session.
type SessionConfig struct {
	// Rounds is the number of rounds to play. Must be >= 1.
	Rounds int

	// PreRoundLiftHeight is the lift position the arm re-homes to
	// before every round, so each countdown bob starts from the same
	// baseline.
	PreRoundLiftHeight float64
}

// Session runs N rounds under one robot/speech resource acquisition.
// Resource teardown (robot close, NATS drain) belongs to the caller and
// must run on every exit path.
type Session struct {
	config  SessionConfig
	round   *Round
	choreo  Choreography
	lift    Lift
	speaker speech.Speaker
	history store.HistoryRepo
	out     io.Writer
	logger  *zap.Logger
}

// NewSession creates a session controller. history may be nil to disable
// recording.
func NewSession(cfg SessionConfig, round *Round, choreo Choreography, lift Lift, speaker speech.Speaker, history store.HistoryRepo, out io.Writer, logger *zap.Logger) (*Session, error) {
	if cfg.Rounds < 1 {
		return nil, fmt.Errorf("rounds must be >= 1, got %d", cfg.Rounds)
	}
	return &Session{
		config:  cfg,
		round:   round,
		choreo:  choreo,
		lift:    lift,
		speaker: speaker,
		history: history,
		out:     out,
		logger:  logger,
	}, nil
}

// Run plays the configured rounds sequentially. Cancellation aborts the
// remaining rounds with a best-effort farewell and returns nil; an
// actuator fault aborts the session and is returned. In-flight hardware
// commands are never interrupted mid-settle, only the loop over
// subsequent rounds is skipped.
func (s *Session) Run(ctx context.Context) error {
	sessionID := uuid.NewString()
	s.recordBegin(ctx, sessionID)

	played := 0
	defer func() { s.recordEnd(sessionID, played) }()

	speech.SayBestEffort(ctx, s.speaker, "Hello! I'm ready to play Rock Paper Scissors!", s.logger)

	for num := 1; num <= s.config.Rounds; num++ {
		if ctx.Err() != nil {
			return s.interrupted(num)
		}

		// Re-home the arm so every countdown bob starts from the same
		// baseline; drift would otherwise accumulate across rounds.
		if err := s.lift.MoveLiftTo(ctx, s.config.PreRoundLiftHeight); err != nil {
			return s.roundFailed(num, err)
		}
		if err := s.choreo.CommitGesture(ctx, gesture.Reset); err != nil {
			return s.roundFailed(num, err)
		}

		if s.config.Rounds > 1 {
			fmt.Fprintf(s.out, "\n%s\n", ui.RoundHeader(fmt.Sprintf("Round %d", num)))
			speech.SayBestEffort(ctx, s.speaker, fmt.Sprintf("Round %d", num), s.logger)
		}

		record, err := s.round.Play(ctx, num)
		if err != nil {
			return s.roundFailed(num, err)
		}
		played++
		s.recordRound(sessionID, record)
	}

	if s.config.Rounds > 1 {
		speech.SayBestEffort(ctx, s.speaker, "Thanks for playing!", s.logger)
	}
	return nil
}

// interrupted handles external cancellation: remaining rounds are
// skipped and the farewell is best-effort. The farewell speaker wait is
// bounded, so this cannot block indefinitely.
func (s *Session) interrupted(num int) error {
	s.logger.Info("session cancelled", zap.Int("next_round", num))
	fmt.Fprintln(s.out, "\nGame interrupted by user")
	speech.SayBestEffort(context.Background(), s.speaker, "Game interrupted. Goodbye!", s.logger)
	return nil
}

func (s *Session) roundFailed(num int, err error) error {
	if errors.Is(err, context.Canceled) {
		return s.interrupted(num)
	}
	return fmt.Errorf("round %d: %w", num, err)
}

func (s *Session) recordBegin(ctx context.Context, id string) {
	if s.history == nil {
		return
	}
	if err := s.history.BeginSession(ctx, id, s.config.Rounds); err != nil {
		s.logger.Warn("history unavailable", zap.Error(err))
	}
}

func (s *Session) recordEnd(id string, played int) {
	if s.history == nil {
		return
	}
	// Fresh context: teardown recording must run even after cancellation.
	if err := s.history.EndSession(context.Background(), id, played); err != nil {
		s.logger.Warn("history unavailable", zap.Error(err))
	}
}

func (s *Session) recordRound(id string, rec RoundRecord) {
	if s.history == nil {
		return
	}
	data := store.RoundEventData{
		SessionID:  id,
		Round:      rec.Round,
		RobotMove:  string(rec.Robot),
		PlayerMove: string(rec.Player),
		Result:     string(rec.Result),
	}
	if err := s.history.AppendRound(context.Background(), data); err != nil {
		s.logger.Warn("history unavailable", zap.Error(err))
	}
}
