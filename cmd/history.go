package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/store"
	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/ui"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show game history",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		tally, err := st.AllTimeTally(ctx)
		if err != nil {
			return err
		}
		if tally.Rounds == 0 {
			fmt.Fprintln(out, "No rounds recorded yet. Play a game first!")
			return nil
		}

		fmt.Fprintln(out, ui.Legend("All-time record:"))
		fmt.Fprintf(out, "  Rounds:  %d\n", tally.Rounds)
		fmt.Fprintf(out, "  Stretch: %d\n", tally.RobotWins)
		fmt.Fprintf(out, "  You:     %d\n", tally.PlayerWins)
		fmt.Fprintf(out, "  Ties:    %d\n", tally.Ties)

		limit, _ := cmd.Flags().GetInt("limit")
		recent, err := st.RecentRounds(ctx, limit)
		if err != nil {
			return err
		}
		if len(recent) > 0 {
			fmt.Fprintln(out, ui.Legend("\nRecent rounds:"))
			for _, r := range recent {
				fmt.Fprintf(out, "  stretch %-8s vs %-8s → %s\n", r.RobotMove, r.PlayerMove, r.Result)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 10, "Number of recent rounds to show")
}
