package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/french-arcade/internal/games/collector"
)

var (
	flagScoresAll   bool
	flagScoresReset bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show collector high scores",
	Long: `Display the best rounds of the word collector game.

Examples:
  french scores
  french scores --all
  french scores --profile marie --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every profile")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete the score history of the profile")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	env, err := setup()
	if err != nil {
		return err
	}
	defer env.Close()

	if env.store == nil {
		return errors.New("scores database is not available")
	}
	profile := env.cfg.Storage.Profile

	if flagScoresReset {
		if err := env.store.ClearScores(profile, collector.ID); err != nil {
			return err
		}
		fmt.Printf("Scores of %q cleared.\n", profile)
		return nil
	}

	scope := profile
	if flagScoresAll {
		scope = ""
	}
	scores, err := env.store.TopScores(scope, collector.ID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	if flagScoresAll {
		fmt.Println("High Scores - all profiles")
		names, err := env.store.Profiles()
		if err != nil {
			return fmt.Errorf("cannot list profiles: %w", err)
		}
		if len(names) > 0 {
			fmt.Printf("Profiles: %s\n", strings.Join(names, ", "))
		}
	} else {
		fmt.Printf("High Scores - %s\n", profile)
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'french play game' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-16s  %s\n", "Rank", "Score", "Profile", "Date")
	fmt.Printf("  %-4s  %-8s  %-16s  %s\n", "----", "-----", "-------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-16s  %s\n", i+1, entry.Score, entry.Profile, dateStr)
	}

	if !flagScoresAll {
		stats, err := env.store.GetGameStats(profile, collector.ID)
		if err == nil && stats.GamesCount > 0 {
			fmt.Println()
			fmt.Printf("Rounds: %d  Best: %d  Average: %.1f  Last played: %s\n",
				stats.GamesCount, stats.HighScore, stats.AvgScore, stats.LastPlayed.Format("2006-01-02"))
		}
	}
	return nil
}
