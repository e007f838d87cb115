package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pentix/internal/platform/tui"
	"github.com/vovakirdan/pentix/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Pentix with the main menu",
	Long: `Start Pentix in interactive menu mode. This is also what running
pentix without a command does.

After a game ends you return to the menu to play again or look at the
scores.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  pentix
  pentix menu --name ann
  pentix menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVarP(&flagName, "name", "n", "", "Player name (prompted when empty)")

	// Running pentix without a command opens the menu.
	rootCmd.Flags().AddFlagSet(menuCmd.Flags())
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	name, err := playerName()
	if err != nil || name == "" {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	for {
		width, height := terminalSize()
		choice, err := tui.RunMenu(menuSubtitle(store, name), width, height)
		if err != nil {
			return err
		}

		switch choice {
		case tui.MenuPlay:
			if _, err := playGame(store, name, width, height); err != nil {
				return err
			}
		case tui.MenuScores, tui.MenuRuns:
			if store == nil {
				logger.Warn("scores are unavailable without a database")
				continue
			}
			view := tui.ViewLeaderboard
			if choice == tui.MenuRuns {
				view = tui.ViewRuns
			}
			if err := tui.RunScoreboard(store, view, flagLimit, width, height); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// menuSubtitle names the player and their stored score, if any.
func menuSubtitle(store *storage.Store, name string) string {
	if store == nil {
		return "Player: " + name
	}
	score, ok, err := store.Score(name)
	if err != nil {
		logger.Debug("could not read score", "player", name, "error", err)
	}
	if !ok {
		return "Player: " + name
	}
	return fmt.Sprintf("Player: %s  Best: %d", name, score)
}
