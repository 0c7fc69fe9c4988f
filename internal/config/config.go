// Package config loads game configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds process configuration. Flags may override individual
// fields after loading; env vars fill the rest.
type Config struct {
	// NATSURL locates the NATS server shared with the robot driver
	// daemon and the sound daemon.
	NATSURL string `env:"STRETCH_RPS_NATS_URL" envDefault:"nats://localhost:4222"`

	// DBPath is the history database location. Empty means the default
	// XDG path.
	DBPath string `env:"STRETCH_RPS_DB"`

	// SettleDelay is the wait after each joint commit.
	SettleDelay time.Duration `env:"STRETCH_RPS_SETTLE_DELAY" envDefault:"1s"`

	// BobRise and BobHold shape the countdown lift animation.
	BobRise float64       `env:"STRETCH_RPS_BOB_RISE" envDefault:"0.1"`
	BobHold time.Duration `env:"STRETCH_RPS_BOB_HOLD" envDefault:"500ms"`

	// SpeechCharDuration is the per-character wait approximating speech
	// completion.
	SpeechCharDuration time.Duration `env:"STRETCH_RPS_SPEECH_CHAR_DURATION" envDefault:"100ms"`

	// PreRoundLiftHeight is the lift position the arm re-homes to
	// before every round.
	PreRoundLiftHeight float64 `env:"STRETCH_RPS_LIFT_HEIGHT" envDefault:"0.5"`

	// Debug enables verbose logging.
	Debug bool `env:"STRETCH_RPS_DEBUG"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the hardware cannot execute safely.
func (c Config) Validate() error {
	if c.SettleDelay < 0 {
		return fmt.Errorf("settle delay must not be negative, got %s", c.SettleDelay)
	}
	if c.BobHold < 0 {
		return fmt.Errorf("bob hold must not be negative, got %s", c.BobHold)
	}
	if c.BobRise <= 0 {
		return fmt.Errorf("bob rise must be positive, got %v", c.BobRise)
	}
	if c.PreRoundLiftHeight <= 0 {
		return fmt.Errorf("pre-round lift height must be positive, got %v", c.PreRoundLiftHeight)
	}
	return nil
}
