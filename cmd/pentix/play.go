package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pentix/internal/config"
	"github.com/vovakirdan/pentix/internal/core"
	"github.com/vovakirdan/pentix/internal/games/pentix"
	"github.com/vovakirdan/pentix/internal/platform/tui"
	"github.com/vovakirdan/pentix/internal/registry"
	"github.com/vovakirdan/pentix/internal/storage"
)

var (
	flagConfig string
	flagName   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Pentix. Without --name you are asked for a player
name first; your score is stored under that name when the game ends,
replacing any earlier score.

Controls:
  Left/Right, A/D  - Move
  Down, S          - Soft drop
  Up, W            - Rotate
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  pentix play
  pentix play --name ann
  pentix play --seed 42 --config ./my-pentix.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVarP(&flagName, "name", "n", "", "Player name (prompted when empty)")
}

func runPlay(_ *cobra.Command, _ []string) error {
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

	width, height := terminalSize()
	_, err = playGame(store, name, width, height)
	return err
}

// loadConfig validates the game config up front so a broken file fails the
// command instead of silently falling back to defaults in the game.
func loadConfig() error {
	cfg, err := config.LoadPentix(flagConfig)
	if err != nil {
		return err
	}
	pentix.SetConfigPath(flagConfig)
	logger.Debug("config loaded",
		"rows", cfg.Board.Rows,
		"columns", cfg.Board.Columns,
		"fall_interval_ms", cfg.Timing.FallIntervalMS,
		"custom_shapes", len(cfg.Shapes),
	)
	return nil
}

// terminalSize returns the size of stdout, or 80x24 if it is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// playGame runs one play session for name. store may be nil.
func playGame(store *storage.Store, name string, width, height int) (tui.Result, error) {
	game, err := registry.Create(pentix.GameID)
	if err != nil {
		return tui.Result{}, fmt.Errorf("create game: %w", err)
	}

	var scores tui.ScoreStore
	if store != nil {
		scores = store
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	res, err := tui.Run(game, scores, name, runtime)
	if err != nil {
		return res, fmt.Errorf("run game: %w", err)
	}

	if res.SaveErr != nil {
		logger.Warn("could not save score", "player", name, "error", res.SaveErr)
	}
	logger.Info("session finished",
		"player", name,
		"games", res.Games,
		"score", res.Score,
		"lines", res.Lines,
		"run", res.RunID,
	)
	return res, nil
}

// playerName returns the validated --name or asks for one. An empty name
// with a nil error means the player backed out of the prompt.
func playerName() (string, error) {
	if flagName != "" {
		name, err := tui.ValidatePlayerName(flagName)
		if err != nil {
			return "", fmt.Errorf("invalid --name: %w", err)
		}
		return name, nil
	}

	name, ok, err := tui.RunNamePrompt(os.Getenv("USER"))
	if err != nil {
		return "", fmt.Errorf("name prompt: %w", err)
	}
	if !ok {
		return "", nil
	}
	return name, nil
}
