package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/french-arcade/internal/platform/tui"
	"github.com/vovakirdan/french-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <activity>",
	Short: "Open an activity",
	Long: `Start the specified activity directly.

Game controls:
  Arrows/WASD/HJKL - Steer (mouse drags work too)
  R                - Say the last word again
  Shift+S          - Say the last word slowly
  M                - Mute or unmute speech
  Esc              - Back to the home screen

Examples:
  french play daily
  french play flashcards
  french play quiz --lang fr
  french play game --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	id := args[0]
	if id != tui.ScoresID && !registry.Exists(id) {
		return fmt.Errorf("unknown activity %q (run 'french list' to see available activities)", id)
	}
	return runInteractive(id)
}

// requireTerminal fails when stdout is not an interactive terminal.
func requireTerminal() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("an interactive terminal is required (try 'french daily' for plain output)")
	}
	return nil
}

// terminalWidth returns the width of stdout, or fallback when unknown.
func terminalWidth(fallback int) int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallback
}
