// french is a terminal French vocabulary trainer: a daily word list,
// flashcards, a quiz, a dictation and a word collector arcade game.
//
// Usage:
//
//	french                   - Start the interactive menu
//	french menu              - Same as above
//	french play <activity>   - Open an activity directly
//	french list              - List activities
//	french daily             - Print today's word list
//	french scores            - Show collector high scores
//	french vocab [file]      - Check a vocabulary catalogue
//	french config            - Print the effective configuration
//	french serve             - Start SSH server for remote practice
//
// Global flags:
//
//	--config <path>   - Configuration file
//	--db <path>       - Progress database (default: ~/.french/french.db)
//	--profile <name>  - Learner profile
//	--vocab <path>    - Vocabulary catalogue (.yaml, .xlsx or .csv)
//	--lang <en|fr>    - Interface language
//	--fps <rate>      - Game frame rate
//	--seed <value>    - RNG seed for reproducible lists and rounds
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import activities to register them
	_ "github.com/vovakirdan/french-arcade/internal/games/collector"
	_ "github.com/vovakirdan/french-arcade/internal/lessons/daily"
	_ "github.com/vovakirdan/french-arcade/internal/lessons/dictation"
	_ "github.com/vovakirdan/french-arcade/internal/lessons/flashcards"
	_ "github.com/vovakirdan/french-arcade/internal/lessons/quiz"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagProfile string
	flagVocab   string
	flagLang    string
	flagFPS     int
	flagSeed    int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "french",
	Short: "French Arcade - learn French words in your terminal",
	Long: `French Arcade is a terminal vocabulary trainer. Study a daily list of
French words, review them with flashcards, a quiz and a dictation, and
collect them in an arcade game.

Available commands:
  menu     - Interactive activity picker (default)
  play     - Open a specific activity directly
  list     - Show all activities
  daily    - Print today's word list
  scores   - View collector high scores
  vocab    - Check a vocabulary catalogue
  config   - Print the effective configuration
  serve    - Start SSH server for remote practice

Examples:
  french
  french play game
  french daily --count 10
  french --profile marie --lang fr
  french serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Learner profile name (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagVocab, "vocab", "", "Vocabulary catalogue file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "Interface language: en or fr")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Game frame rate (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
