package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/french-arcade/internal/vocab"
)

// Below this width the IPA column is left out.
const ipaMinWidth = 72

var flagDailyCount int

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Print today's word list",
	Long: `Draws a daily list from the catalogue, weighted towards words the
learner finds hard, and prints it without starting the interactive UI.

Examples:
  french daily
  french daily --count 10
  french daily --profile marie --seed 7`,
	Args: cobra.NoArgs,
	RunE: runDaily,
}

func init() {
	dailyCmd.Flags().IntVar(&flagDailyCount, "count", 0, "Number of words (default from config)")
}

func runDaily(_ *cobra.Command, _ []string) error {
	env, err := setup()
	if err != nil {
		return err
	}
	defer env.Close()

	n := env.cfg.Vocab.DailyCount
	if flagDailyCount > 0 {
		n = flagDailyCount
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	words := vocab.NewScheduler(env.vocab, rand.NewSource(seed)).DailyList(n)
	if len(words) == 0 {
		fmt.Println("The catalogue is empty.")
		return nil
	}

	withIPA := terminalWidth(80) >= ipaMinWidth
	if withIPA {
		fmt.Printf("  %-22s  %-16s  %-22s  %-5s  %s\n", "Word", "IPA", "English", "Level", "Learned")
		fmt.Printf("  %-22s  %-16s  %-22s  %-5s  %s\n", "----", "---", "-------", "-----", "-------")
	} else {
		fmt.Printf("  %-22s  %-22s  %s\n", "Word", "English", "Level")
		fmt.Printf("  %-22s  %-22s  %s\n", "----", "-------", "-----")
	}

	for _, w := range words {
		p := env.vocab.Progress(w.ID)
		learned := ""
		if p.Learned {
			learned = "yes"
		}
		if withIPA {
			fmt.Printf("  %-22s  %-16s  %-22s  %-5d  %s\n", w.FR, w.IPA, w.EN, p.Difficulty, learned)
		} else {
			fmt.Printf("  %-22s  %-22s  %d\n", w.FR, w.EN, p.Difficulty)
		}
	}

	fmt.Println()
	fmt.Printf("Total score: %d\n", env.vocab.TotalScore())
	return nil
}
