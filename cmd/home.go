package cmd

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Home the robot and prepare for the game",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The homing executables ship with the robot's own tooling.
		steps := []string{"stretch_free_robot_process.py", "stretch_robot_home.py"}
		for _, step := range steps {
			c := exec.CommandContext(cmd.Context(), step)
			c.Stdout = cmd.OutOrStdout()
			c.Stderr = cmd.ErrOrStderr()
			if err := c.Run(); err != nil {
				return fmt.Errorf("%s: %w", step, err)
			}
		}
		return nil
	},
}
