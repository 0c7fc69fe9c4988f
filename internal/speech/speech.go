// Package speech sends utterances to the sound daemon. Speech is cosmetic:
// failures are logged and swallowed, never aborting a round.
package speech

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// SubjectSay is the sound daemon's utterance subject.
const SubjectSay = "speech.say"

// DefaultCharDuration is the per-character wait approximating speech
// completion. There is no delivery confirmation from the sound daemon;
// callers only rely on the wait being long enough.
const DefaultCharDuration = 100 * time.Millisecond

// Speaker voices an utterance, blocking roughly as long as it takes to say.
type Speaker interface {
	Say(ctx context.Context, text string) error
}

// sayMessage is the wire payload published to the sound daemon.
type sayMessage struct {
	Text string `json:"text"`
}

// NATSSpeaker publishes utterances to the sound daemon over NATS and
// sleeps proportionally to utterance length.
type NATSSpeaker struct {
	nc           *nats.Conn
	charDuration time.Duration
	sleep        func(time.Duration)
	logger       *zap.Logger
}

// NewNATSSpeaker wraps an existing NATS connection.
func NewNATSSpeaker(nc *nats.Conn, charDuration time.Duration, logger *zap.Logger) *NATSSpeaker {
	if charDuration <= 0 {
		charDuration = DefaultCharDuration
	}
	return &NATSSpeaker{
		nc:           nc,
		charDuration: charDuration,
		sleep:        time.Sleep,
		logger:       logger,
	}
}

// Say publishes the utterance and blocks approximately as long as the
// sound daemon needs to voice it.
func (s *NATSSpeaker) Say(_ context.Context, text string) error {
	data, err := json.Marshal(sayMessage{Text: text})
	if err != nil {
		return fmt.Errorf("marshal say message: %w", err)
	}
	if err := s.nc.Publish(SubjectSay, data); err != nil {
		return fmt.Errorf("publish utterance: %w", err)
	}
	s.sleep(time.Duration(len(text)) * s.charDuration)
	return nil
}

// SayBestEffort voices the utterance, logging and discarding any failure.
func SayBestEffort(ctx context.Context, s Speaker, text string, logger *zap.Logger) {
	if err := s.Say(ctx, text); err != nil {
		logger.Warn("speech unavailable", zap.String("text", text), zap.Error(err))
	}
}
