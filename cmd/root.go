package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/store"
)

var rootCmd = &cobra.Command{
	Use:           "stretch-rps",
	Short:         "Rock Paper Scissors against the Stretch robot",
	Long:          "Play Rock Paper Scissors against a Stretch robot: countdown theatrics, a physical gesture, and a scored round.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history database (overrides STRETCH_RPS_DB env var)")
	rootCmd.PersistentFlags().String("nats-url", "", "NATS server URL (overrides STRETCH_RPS_NATS_URL env var)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable verbose logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(movesCmd)
	rootCmd.AddCommand(homeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then STRETCH_RPS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
