package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/french-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Opens the home screen to pick an activity interactively.

Controls:
  Up/Down    - Move selection (also j/k, w/s)
  Enter      - Open the selected activity
  Tab        - High scores
  R          - Reset the total score
  Esc        - Back to the home screen
  Ctrl+L     - Switch language (EN/FR)
  Ctrl+T     - Switch theme (dark/light)
  Q/Ctrl+C   - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runInteractive(tui.HomeID)
}

// runInteractive opens the TUI on the start screen.
func runInteractive(start string) error {
	if err := requireTerminal(); err != nil {
		return err
	}

	env, err := setup()
	if err != nil {
		return err
	}
	defer env.Close()

	return tui.Run(env.deps(), start)
}
