package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/french-arcade/internal/config"
)

var flagConfigEnv bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after files, .env, environment variables and
flags were applied. With --env, lists the supported environment variables.

Search order without --config:
  1. ~/.french/config.yaml
  2. ./configs/french.yaml
  3. built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEnv, "env", false, "List environment variables")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigEnv {
		help, err := config.EnvHelp()
		if err != nil {
			return err
		}
		fmt.Print(help)
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cfg)
}
