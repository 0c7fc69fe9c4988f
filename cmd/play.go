package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/choreo"
	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/config"
	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/game"
	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/logging"
	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/opponent"
	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/robot"
	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/speech"
	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/store"
	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Rock Paper Scissors against the robot",
	RunE: func(cmd *cobra.Command, args []string) error {
		rounds, err := cmd.Flags().GetInt("rounds")
		if err != nil {
			return err
		}
		if rounds < 1 {
			return fmt.Errorf("rounds must be >= 1, got %d", rounds)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if url, _ := cmd.Flags().GetString("nats-url"); url != "" {
			cfg.NATSURL = url
		}
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			cfg.Debug = true
		}

		logger, err := logging.New(cfg.Debug)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() {
			_ = logger.Sync()
		}()

		// Interrupts cancel the session between blocking steps; in-flight
		// hardware commands still finish their settle wait.
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		out := cmd.OutOrStdout()

		// History is a convenience, not part of the game: a broken
		// database must not stop play.
		var history store.HistoryRepo
		dbPath, err := resolveDBPath(cmd)
		if err == nil {
			st, openErr := store.Open(dbPath)
			if openErr != nil {
				logger.Warn("history disabled", zap.Error(openErr))
			} else {
				defer st.Close()
				history = st
			}
		} else {
			logger.Warn("history disabled", zap.Error(err))
		}

		nc, err := nats.Connect(cfg.NATSURL,
			nats.RetryOnFailedConnect(true),
			nats.MaxReconnects(5),
			nats.ReconnectWait(time.Second),
		)
		if err != nil {
			return fmt.Errorf("connect to NATS at %s: %w", cfg.NATSURL, err)
		}
		defer nc.Close()

		driver, err := robot.NewNATSDriver(nc, logger)
		if err != nil {
			fmt.Fprintln(out, ui.Error("Error: failed to initialize the robot"))
			return err
		}
		defer driver.Close()

		actuator := robot.NewActuator(driver, robot.Config{SettleDelay: cfg.SettleDelay})
		speaker := speech.NewNATSSpeaker(nc, cfg.SpeechCharDuration, logger)

		chor := choreo.New(actuator, speaker, choreo.Config{
			BobRise: cfg.BobRise,
			BobHold: cfg.BobHold,
		}, logger)
		chor.OnWord = func(word string) {
			fmt.Fprintf(out, "%s...", word)
		}

		prompter := opponent.NewStdinPrompter(cmd.InOrStdin(), out)
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		round := game.NewRound(chor, speaker, prompter, rng, out, logger)

		session, err := game.NewSession(game.SessionConfig{
			Rounds:             rounds,
			PreRoundLiftHeight: cfg.PreRoundLiftHeight,
		}, round, chor, actuator, speaker, history, out, logger)
		if err != nil {
			return err
		}

		if err := session.Run(ctx); err != nil {
			fmt.Fprintln(out, ui.Error(fmt.Sprintf("Error: %v", err)))
			return err
		}
		return nil
	},
}

func init() {
	playCmd.Flags().IntP("rounds", "r", 1, "Number of rounds to play")
}
