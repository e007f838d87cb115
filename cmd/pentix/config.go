package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pentix/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a game would use, as YAML.

Lookup order:
  1. --config <file>
  2. $XDG_CONFIG_HOME/pentix/pentix.yaml
  3. ./configs/pentix.yaml
  4. Built-in defaults

Examples:
  pentix config
  pentix config --config ./my-pentix.yaml
  pentix config --defaults > ~/.config/pentix/pentix.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadPentix(flagConfig)
	if err != nil {
		return err
	}
	if path := config.UserConfigPath(); path != "" && flagConfig == "" {
		logger.Debug("user config found", "path", path)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
