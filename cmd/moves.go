package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/game"
	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/ui"
)

var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "Show the available moves",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Legend("\nAvailable moves:"))

		emojis := map[game.Move]string{
			game.Rock:     "🤜",
			game.Paper:    "✋",
			game.Scissors: "✌️",
		}
		for _, m := range game.Moves() {
			fmt.Fprintf(out, "%s  %-8s - %s\n", emojis[m], m, m.Description())
		}
	},
}
