package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/french-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all activities",
	Long:  `Shows a list of all lessons and games registered in the trainer.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	acts := registry.List()

	if len(acts) == 0 {
		fmt.Println("No activities available.")
		return nil
	}

	fmt.Println("Available activities:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, a := range acts {
		maxIDLen = max(maxIDLen, len(a.ID))
		maxTitleLen = max(maxTitleLen, len([]rune(a.Title.For(cfg.UI.Lang))))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----------")

	for _, a := range acts {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, a.ID, maxTitleLen, a.Title.For(cfg.UI.Lang), a.Summary)
	}

	fmt.Println()
	fmt.Println("Run 'french play <id>' to open an activity.")
	return nil
}
