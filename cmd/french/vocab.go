package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/french-arcade/internal/storage"
	"github.com/vovakirdan/french-arcade/internal/vocab"
)

var flagVocabYAML bool

var vocabCmd = &cobra.Command{
	Use:   "vocab [file]",
	Short: "Check a vocabulary catalogue",
	Long: `Loads a catalogue and prints a summary, or the catalogue itself as
YAML with --yaml. Without a file the configured catalogue is used.

Supported formats: .yaml/.yml, .xlsx and .csv. Spreadsheets use the columns
id, fr, en, ipa, type, difficulty with a header row.

Examples:
  french vocab
  french vocab ./words.xlsx
  french vocab ./words.csv --yaml > words.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVocab,
}

func init() {
	vocabCmd.Flags().BoolVar(&flagVocabYAML, "yaml", false, "Print the catalogue as YAML")
}

func runVocab(_ *cobra.Command, args []string) error {
	var (
		cat *vocab.Catalogue
		err error
	)
	if len(args) == 1 {
		path, pathErr := storage.ExpandHome(args[0])
		if pathErr != nil {
			return pathErr
		}
		cat, err = vocab.LoadCatalogue(path)
	} else {
		cfg, cfgErr := loadConfig()
		if cfgErr != nil {
			return cfgErr
		}
		cat, err = loadCatalogue(cfg)
	}
	if err != nil {
		return err
	}

	if flagVocabYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(cat)
	}

	byType := make(map[string]int)
	for _, e := range cat.Entries() {
		byType[e.PartOfSpeech]++
	}
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	fmt.Printf("%d words\n", cat.Len())
	for _, t := range types {
		name := t
		if name == "" {
			name = "(untyped)"
		}
		fmt.Printf("  %-12s %d\n", name, byType[t])
	}
	return nil
}
