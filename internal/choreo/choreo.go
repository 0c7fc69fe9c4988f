// Package choreo sequences the countdown theatrics and final gesture
// commit against the arm and the speech channel.
package choreo

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/gesture"
	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/speech"
)

// Arm is the actuator surface the choreographer drives.
type Arm interface {
	SetWristOrientation(ctx context.Context, yaw, roll float64) error
	SetGripperOpening(ctx context.Context, value float64) error
	BobLift(ctx context.Context, deltaUp float64, hold time.Duration) error
}

// Config holds the countdown animation parameters.
type Config struct {
	// BobRise is how far the lift moves up for each countdown word.
	BobRise float64
	// BobHold is the pause at the top and bottom of each bob.
	BobHold time.Duration
}

// DefaultConfig returns the animation timings tuned on the physical arm.
func DefaultConfig() Config {
	return Config{
		BobRise: 0.1,
		BobHold: 500 * time.Millisecond,
	}
}

// Choreographer overlaps lift bobs with spoken countdown words and
// commits the final gesture pose.
type Choreographer struct {
	arm     Arm
	speaker speech.Speaker
	config  Config
	logger  *zap.Logger

	// OnWord, when set, is called at the start of each countdown word.
	// The round controller uses it for the textual channel.
	OnWord func(word string)
}

// New creates a Choreographer.
func New(arm Arm, speaker speech.Speaker, cfg Config, logger *zap.Logger) *Choreographer {
	return &Choreographer{arm: arm, speaker: speaker, config: cfg, logger: logger}
}

// PerformCountdown bobs the lift while speaking each word, in order.
// The bob and the word overlap; both must finish before the next word
// starts. A bob failure is an actuator fault and propagates; speech
// failure is best-effort.
func (c *Choreographer) PerformCountdown(ctx context.Context, words []string) error {
	for _, word := range words {
		if c.OnWord != nil {
			c.OnWord(word)
		}

		var wg sync.WaitGroup
		var bobErr error
		wg.Add(1)
		go func() {
			defer wg.Done()
			bobErr = c.arm.BobLift(ctx, c.config.BobRise, c.config.BobHold)
		}()

		speech.SayBestEffort(ctx, c.speaker, word, c.logger)

		wg.Wait()
		if bobErr != nil {
			return bobErr
		}
	}
	return nil
}

// CommitGesture moves the arm into the gesture's pose: wrist orientation
// first as one batch, then the gripper shape. The order is a contract of
// the pose table.
func (c *Choreographer) CommitGesture(ctx context.Context, g gesture.Gesture) error {
	pose := gesture.PoseFor(g)

	if err := c.arm.SetWristOrientation(ctx, pose.WristYaw, pose.WristRoll); err != nil {
		return err
	}
	return c.arm.SetGripperOpening(ctx, pose.Gripper)
}
