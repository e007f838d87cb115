// pentix is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	pentix                   - Open the main menu
//	pentix play              - Play a game
//	pentix scores            - Show the high score table
//	pentix config            - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: $XDG_DATA_HOME/pentix/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pentix/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pentix",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pentix",
	Short: "Pentix - a falling-block puzzle in your terminal",
	Long: `Pentix is a falling-block puzzle game with tetrominoes and
pentominoes. Complete a row to clear it; the game ends when a new
piece has no room to appear.

Run without a command to open the main menu.

Available commands:
  menu     - Main menu (default)
  play     - Play a game
  scores   - View the high score table
  config   - Print the effective configuration

Examples:
  pentix
  pentix play
  pentix play --name ann
  pentix scores --limit 5
  pentix config --config ./my-pentix.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies the global flags shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if flagDBPath == "" {
		path, err := storage.DefaultPath()
		if err != nil {
			return err
		}
		flagDBPath = path
	}
	logger.Debug("using scores database", "path", flagDBPath)
	return nil
}

// openStore opens the scores database, logging instead of failing so the
// game stays playable without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
